package models

// Query paths allowed regardless of role.
func GetDefaultAllowedPaths() map[string]bool {
	return map[string]bool{
		"me":              true,
		"logout":          true,
		"changePassword":  true,
		"getSuppliers":    true,
		"getDesignations": true,
		"getEmployees":    true,
	}
}

// Admins can reach every operation.
func GetAdminPaths() map[string]bool {
	paths := map[string]bool{
		"getPeriodStatement":      true,
		"getBankDeposits":         true,
		"addBankDeposit":          true,
		"updateBankDeposit":       true,
		"deleteBankDeposit":       true,
		"getSalaryRemainders":     true,
		"getSalaryRemainderTotal": true,
		"upsertSalaryRemainder":   true,
		"deleteSalaryRemainder":   true,
		"getLockedDates":          true,
		"lockDate":                true,
		"unlockDate":              true,
		"getAllUsers":             true,
		"createUser":              true,
		"updateUser":              true,
		"clearRedis":              true,
		"toggleActiveSupplier":    true,
		"deleteDesignation":       true,
		"toggleActiveEmployee":    true,
		"updateInvoice":           true,
		"deleteInvoice":           true,
		"unpayInvoice":            true,
	}
	for path := range GetCashierPaths() {
		paths[path] = true
	}
	for path := range GetDefaultAllowedPaths() {
		paths[path] = true
	}
	return paths
}

// Cashiers record day sheets and invoices, nothing administrative.
func GetCashierPaths() map[string]bool {
	return map[string]bool{
		"getDayRecord":         true,
		"getDayRecordsByRange": true,
		"saveDayRecord":        true,
		"getInvoice":           true,
		"getInvoices":          true,
		"paginateInvoice":      true,
		"createInvoice":        true,
		"payInvoice":           true,
		"upsertSupplier":       true,
		"upsertDesignation":    true,
		"upsertEmployee":       true,
		"signUpload":           true,
	}
}
