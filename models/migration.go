package models

import (
	"log"

	"bitbucket.org/carthagesoft/caisse_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&DayRecord{},
		&Invoice{},
		&Supplier{}, &Designation{}, &Employee{},
		&BankDeposit{}, &SalaryRemainder{},
		&LockedDate{},
		&User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
