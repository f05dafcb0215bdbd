package graph

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/carthagesoft/caisse_backend/middlewares"
	"bitbucket.org/carthagesoft/caisse_backend/models"
	"bitbucket.org/carthagesoft/caisse_backend/models/reports"
	"bitbucket.org/carthagesoft/caisse_backend/utils"
	"github.com/shopspring/decimal"
)

// SupplierLines is the resolver for the supplierLines field.
func (r *dayRecordResolver) SupplierLines(ctx context.Context, obj *models.DayRecord) ([]*models.ExpenseLine, error) {
	panic(fmt.Errorf("not implemented: SupplierLines - supplierLines"))
}

// DailyLines is the resolver for the dailyLines field.
func (r *dayRecordResolver) DailyLines(ctx context.Context, obj *models.DayRecord) ([]*models.ExpenseLine, error) {
	panic(fmt.Errorf("not implemented: DailyLines - dailyLines"))
}

// MiscLines is the resolver for the miscLines field.
func (r *dayRecordResolver) MiscLines(ctx context.Context, obj *models.DayRecord) ([]*models.ExpenseLine, error) {
	panic(fmt.Errorf("not implemented: MiscLines - miscLines"))
}

// AdminLines is the resolver for the adminLines field.
func (r *dayRecordResolver) AdminLines(ctx context.Context, obj *models.DayRecord) ([]*models.AdminLine, error) {
	panic(fmt.Errorf("not implemented: AdminLines - adminLines"))
}

// Advances is the resolver for the advances field.
func (r *dayRecordResolver) Advances(ctx context.Context, obj *models.DayRecord) ([]*models.PayoutLine, error) {
	panic(fmt.Errorf("not implemented: Advances - advances"))
}

// Overtime is the resolver for the overtime field.
func (r *dayRecordResolver) Overtime(ctx context.Context, obj *models.DayRecord) ([]*models.PayoutLine, error) {
	panic(fmt.Errorf("not implemented: Overtime - overtime"))
}

// Extras is the resolver for the extras field.
func (r *dayRecordResolver) Extras(ctx context.Context, obj *models.DayRecord) ([]*models.PayoutLine, error) {
	panic(fmt.Errorf("not implemented: Extras - extras"))
}

// Bonuses is the resolver for the bonuses field.
func (r *dayRecordResolver) Bonuses(ctx context.Context, obj *models.DayRecord) ([]*models.PayoutLine, error) {
	panic(fmt.Errorf("not implemented: Bonuses - bonuses"))
}

// Invoice is the resolver for the invoice field.
func (r *expenseLineResolver) Invoice(ctx context.Context, obj *models.ExpenseLine) (*models.Invoice, error) {
	if !obj.IsFromInvoice || obj.InvoiceId == 0 {
		return nil, nil
	}
	return middlewares.GetInvoice(ctx, obj.InvoiceId)
}

// AttachmentRefs is the resolver for the attachmentRefs field.
func (r *invoiceResolver) AttachmentRefs(ctx context.Context, obj *models.Invoice) ([]string, error) {
	panic(fmt.Errorf("not implemented: AttachmentRefs - attachmentRefs"))
}

// ChequePhotoRefs is the resolver for the chequePhotoRefs field.
func (r *invoiceResolver) ChequePhotoRefs(ctx context.Context, obj *models.Invoice) ([]string, error) {
	panic(fmt.Errorf("not implemented: ChequePhotoRefs - chequePhotoRefs"))
}

// Supplier is the resolver for the supplier field.
func (r *invoiceResolver) Supplier(ctx context.Context, obj *models.Invoice) (*models.Supplier, error) {
	if obj.Category != models.InvoiceCategoryFournisseur {
		return nil, nil
	}
	return middlewares.GetSupplierByName(ctx, obj.Name)
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, username string, password string) (*models.LoginInfo, error) {
	return models.Login(ctx, username, password)
}

// Logout is the resolver for the logout field.
func (r *mutationResolver) Logout(ctx context.Context) (bool, error) {
	return models.Logout(ctx)
}

// ChangePassword is the resolver for the changePassword field.
func (r *mutationResolver) ChangePassword(ctx context.Context, oldPassword string, newPassword string) (bool, error) {
	return models.ChangePassword(ctx, oldPassword, newPassword)
}

// CreateUser is the resolver for the createUser field.
func (r *mutationResolver) CreateUser(ctx context.Context, input models.NewUser) (*models.User, error) {
	return models.CreateUser(ctx, &input)
}

// UpdateUser is the resolver for the updateUser field.
func (r *mutationResolver) UpdateUser(ctx context.Context, id int, input models.NewUser) (*models.User, error) {
	user := models.User{
		Username: input.Username,
		Name:     input.Name,
		IsActive: input.IsActive,
		Role:     input.Role,
	}
	return user.UpdateUser(id)
}

// ClearRedis is the resolver for the clearRedis field.
func (r *mutationResolver) ClearRedis(ctx context.Context) (string, error) {
	return models.ClearAllRedis(ctx)
}

// SaveDayRecord is the resolver for the saveDayRecord field.
func (r *mutationResolver) SaveDayRecord(ctx context.Context, input models.NewDayRecord) (*models.DayRecord, error) {
	ctx, span := r.Tracer.Start(ctx, "saveDayRecord")
	defer span.End()
	return models.SaveDayRecord(ctx, &input)
}

// CreateInvoice is the resolver for the createInvoice field.
func (r *mutationResolver) CreateInvoice(ctx context.Context, input models.NewInvoice) (*models.Invoice, error) {
	return models.CreateInvoice(ctx, &input)
}

// UpdateInvoice is the resolver for the updateInvoice field.
func (r *mutationResolver) UpdateInvoice(ctx context.Context, id int, input models.NewInvoice) (*models.Invoice, error) {
	return models.UpdateInvoice(ctx, id, &input)
}

// PayInvoice is the resolver for the payInvoice field.
func (r *mutationResolver) PayInvoice(ctx context.Context, id int, paymentMethod models.PaymentMethod, paidDate models.MyDateString, payer *string, chequePhotoRefs []string) (*models.Invoice, error) {
	return models.PayInvoice(ctx, id, paymentMethod, paidDate, utils.DereferencePtr(payer), models.StringList(chequePhotoRefs))
}

// UnpayInvoice is the resolver for the unpayInvoice field.
func (r *mutationResolver) UnpayInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return models.UnpayInvoice(ctx, id)
}

// DeleteInvoice is the resolver for the deleteInvoice field.
func (r *mutationResolver) DeleteInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return models.DeleteInvoice(ctx, id)
}

// UpsertSupplier is the resolver for the upsertSupplier field.
func (r *mutationResolver) UpsertSupplier(ctx context.Context, input models.NewSupplier) (*models.Supplier, error) {
	return models.UpsertSupplier(ctx, &input)
}

// ToggleActiveSupplier is the resolver for the toggleActiveSupplier field.
func (r *mutationResolver) ToggleActiveSupplier(ctx context.Context, id int, isActive bool) (*models.Supplier, error) {
	return models.ToggleActiveSupplier(ctx, id, isActive)
}

// UpsertDesignation is the resolver for the upsertDesignation field.
func (r *mutationResolver) UpsertDesignation(ctx context.Context, input models.NewDesignation) (*models.Designation, error) {
	return models.UpsertDesignation(ctx, &input)
}

// DeleteDesignation is the resolver for the deleteDesignation field.
func (r *mutationResolver) DeleteDesignation(ctx context.Context, id int) (*models.Designation, error) {
	return models.DeleteDesignation(ctx, id)
}

// UpsertEmployee is the resolver for the upsertEmployee field.
func (r *mutationResolver) UpsertEmployee(ctx context.Context, input models.NewEmployee) (*models.Employee, error) {
	return models.UpsertEmployee(ctx, &input)
}

// ToggleActiveEmployee is the resolver for the toggleActiveEmployee field.
func (r *mutationResolver) ToggleActiveEmployee(ctx context.Context, id int, isActive bool) (*models.Employee, error) {
	return models.ToggleActiveEmployee(ctx, id, isActive)
}

// AddBankDeposit is the resolver for the addBankDeposit field.
func (r *mutationResolver) AddBankDeposit(ctx context.Context, input models.NewBankDeposit) (*models.BankDeposit, error) {
	return models.AddBankDeposit(ctx, &input)
}

// UpdateBankDeposit is the resolver for the updateBankDeposit field.
func (r *mutationResolver) UpdateBankDeposit(ctx context.Context, id int, input models.NewBankDeposit) (*models.BankDeposit, error) {
	return models.UpdateBankDeposit(ctx, id, &input)
}

// DeleteBankDeposit is the resolver for the deleteBankDeposit field.
func (r *mutationResolver) DeleteBankDeposit(ctx context.Context, id int) (*models.BankDeposit, error) {
	return models.DeleteBankDeposit(ctx, id)
}

// UpsertSalaryRemainder is the resolver for the upsertSalaryRemainder field.
func (r *mutationResolver) UpsertSalaryRemainder(ctx context.Context, input models.NewSalaryRemainder) (*models.SalaryRemainder, error) {
	return models.UpsertSalaryRemainder(ctx, &input)
}

// DeleteSalaryRemainder is the resolver for the deleteSalaryRemainder field.
func (r *mutationResolver) DeleteSalaryRemainder(ctx context.Context, id int) (*models.SalaryRemainder, error) {
	return models.DeleteSalaryRemainder(ctx, id)
}

// LockDate is the resolver for the lockDate field.
func (r *mutationResolver) LockDate(ctx context.Context, date models.MyDateString, reason *string) (*models.LockedDate, error) {
	return models.LockDate(ctx, date, reason)
}

// UnlockDate is the resolver for the unlockDate field.
func (r *mutationResolver) UnlockDate(ctx context.Context, date models.MyDateString) (*models.LockedDate, error) {
	return models.UnlockDate(ctx, date)
}

// SignUpload is the resolver for the signUpload field.
func (r *mutationResolver) SignUpload(ctx context.Context, fileName string, contentType string) (*utils.SignedUpload, error) {
	month := time.Now().Format("2006-01")
	objectKey := "cheques/" + month + "/" + utils.GenerateUniqueFilename() + "_" + fileName
	return utils.SignUpload(ctx, objectKey, contentType, 15*time.Minute)
}

// Employee is the resolver for the employee field.
func (r *payoutLineResolver) Employee(ctx context.Context, obj *models.PayoutLine) (*models.Employee, error) {
	return middlewares.GetEmployeeByName(ctx, obj.Username)
}

// GetDayRecord is the resolver for the getDayRecord field.
func (r *queryResolver) GetDayRecord(ctx context.Context, date models.MyDateString) (*models.DayRecord, error) {
	return models.GetDayRecord(ctx, date)
}

// GetDayRecordsByRange is the resolver for the getDayRecordsByRange field.
func (r *queryResolver) GetDayRecordsByRange(ctx context.Context, fromDate models.MyDateString, toDate models.MyDateString) ([]*models.DayRecord, error) {
	return models.GetDayRecordsByRange(ctx, fromDate, toDate)
}

// GetPeriodStatement is the resolver for the getPeriodStatement field.
func (r *queryResolver) GetPeriodStatement(ctx context.Context, fromDate models.MyDateString, toDate models.MyDateString, filter *string) (*reports.PeriodStatement, error) {
	ctx, span := r.Tracer.Start(ctx, "getPeriodStatement")
	defer span.End()
	return reports.GetPeriodStatement(ctx, fromDate, toDate, filter)
}

// GetInvoice is the resolver for the getInvoice field.
func (r *queryResolver) GetInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return models.GetInvoice(ctx, id)
}

// GetInvoices is the resolver for the getInvoices field.
func (r *queryResolver) GetInvoices(ctx context.Context, name *string, startDate *models.MyDateString, endDate *models.MyDateString, payer *string, status *models.InvoiceStatus) ([]*models.Invoice, error) {
	return models.GetInvoices(ctx, name, startDate, endDate, payer, status)
}

// PaginateInvoice is the resolver for the paginateInvoice field.
func (r *queryResolver) PaginateInvoice(ctx context.Context, limit *int, after *string, name *string, status *models.InvoiceStatus, category *models.InvoiceCategory, startIssueDate *models.MyDateString, endIssueDate *models.MyDateString) (*models.InvoicesConnection, error) {
	return models.PaginateInvoice(ctx, limit, after, name, status, category, startIssueDate, endIssueDate)
}

// GetSupplier is the resolver for the getSupplier field.
func (r *queryResolver) GetSupplier(ctx context.Context, id int) (*models.Supplier, error) {
	return models.GetSupplier(ctx, id)
}

// GetSuppliers is the resolver for the getSuppliers field.
func (r *queryResolver) GetSuppliers(ctx context.Context, name *string) ([]*models.Supplier, error) {
	return models.GetSuppliers(ctx, name)
}

// GetDesignations is the resolver for the getDesignations field.
func (r *queryResolver) GetDesignations(ctx context.Context, name *string, typeArg *models.DesignationType) ([]*models.Designation, error) {
	return models.GetDesignations(ctx, name, typeArg)
}

// GetEmployee is the resolver for the getEmployee field.
func (r *queryResolver) GetEmployee(ctx context.Context, id int) (*models.Employee, error) {
	return models.GetEmployee(ctx, id)
}

// GetEmployees is the resolver for the getEmployees field.
func (r *queryResolver) GetEmployees(ctx context.Context, name *string) ([]*models.Employee, error) {
	return models.GetEmployees(ctx, name)
}

// GetBankDeposits is the resolver for the getBankDeposits field.
func (r *queryResolver) GetBankDeposits(ctx context.Context, fromDate *models.MyDateString, toDate *models.MyDateString) ([]*models.BankDeposit, error) {
	return models.GetBankDeposits(ctx, fromDate, toDate)
}

// GetSalaryRemainders is the resolver for the getSalaryRemainders field.
func (r *queryResolver) GetSalaryRemainders(ctx context.Context, month *string, employeeName *string) ([]*models.SalaryRemainder, error) {
	return models.GetSalaryRemainders(ctx, month, employeeName)
}

// GetSalaryRemainderTotal is the resolver for the getSalaryRemainderTotal field.
func (r *queryResolver) GetSalaryRemainderTotal(ctx context.Context, month string) (*decimal.Decimal, error) {
	total, err := models.GetSalaryRemainderTotal(ctx, month)
	if err != nil {
		return nil, err
	}
	return &total, nil
}

// GetLockedDates is the resolver for the getLockedDates field.
func (r *queryResolver) GetLockedDates(ctx context.Context) ([]*models.LockedDate, error) {
	return models.GetLockedDates(ctx)
}

// GetAllUsers is the resolver for the getAllUsers field.
func (r *queryResolver) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return models.GetAllUsers(ctx)
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*models.User, error) {
	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok || username == "" {
		return nil, nil
	}
	user, err := models.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// SupplierLines is the resolver for the supplierLines field.
func (r *newDayRecordResolver) SupplierLines(ctx context.Context, obj *models.NewDayRecord, data []*models.ExpenseLine) error {
	panic(fmt.Errorf("not implemented: SupplierLines - supplierLines"))
}

// DailyLines is the resolver for the dailyLines field.
func (r *newDayRecordResolver) DailyLines(ctx context.Context, obj *models.NewDayRecord, data []*models.ExpenseLine) error {
	panic(fmt.Errorf("not implemented: DailyLines - dailyLines"))
}

// MiscLines is the resolver for the miscLines field.
func (r *newDayRecordResolver) MiscLines(ctx context.Context, obj *models.NewDayRecord, data []*models.ExpenseLine) error {
	panic(fmt.Errorf("not implemented: MiscLines - miscLines"))
}

// AdminLines is the resolver for the adminLines field.
func (r *newDayRecordResolver) AdminLines(ctx context.Context, obj *models.NewDayRecord, data []*models.AdminLine) error {
	panic(fmt.Errorf("not implemented: AdminLines - adminLines"))
}

// Advances is the resolver for the advances field.
func (r *newDayRecordResolver) Advances(ctx context.Context, obj *models.NewDayRecord, data []*models.PayoutLine) error {
	panic(fmt.Errorf("not implemented: Advances - advances"))
}

// Overtime is the resolver for the overtime field.
func (r *newDayRecordResolver) Overtime(ctx context.Context, obj *models.NewDayRecord, data []*models.PayoutLine) error {
	panic(fmt.Errorf("not implemented: Overtime - overtime"))
}

// Extras is the resolver for the extras field.
func (r *newDayRecordResolver) Extras(ctx context.Context, obj *models.NewDayRecord, data []*models.PayoutLine) error {
	panic(fmt.Errorf("not implemented: Extras - extras"))
}

// Bonuses is the resolver for the bonuses field.
func (r *newDayRecordResolver) Bonuses(ctx context.Context, obj *models.NewDayRecord, data []*models.PayoutLine) error {
	panic(fmt.Errorf("not implemented: Bonuses - bonuses"))
}

// AttachmentRefs is the resolver for the attachmentRefs field.
func (r *newInvoiceResolver) AttachmentRefs(ctx context.Context, obj *models.NewInvoice, data []string) error {
	panic(fmt.Errorf("not implemented: AttachmentRefs - attachmentRefs"))
}

// ChequePhotoRefs is the resolver for the chequePhotoRefs field.
func (r *newInvoiceResolver) ChequePhotoRefs(ctx context.Context, obj *models.NewInvoice, data []string) error {
	panic(fmt.Errorf("not implemented: ChequePhotoRefs - chequePhotoRefs"))
}

// DayRecord returns DayRecordResolver implementation.
func (r *Resolver) DayRecord() DayRecordResolver { return &dayRecordResolver{r} }

// ExpenseLine returns ExpenseLineResolver implementation.
func (r *Resolver) ExpenseLine() ExpenseLineResolver { return &expenseLineResolver{r} }

// Invoice returns InvoiceResolver implementation.
func (r *Resolver) Invoice() InvoiceResolver { return &invoiceResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// PayoutLine returns PayoutLineResolver implementation.
func (r *Resolver) PayoutLine() PayoutLineResolver { return &payoutLineResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// NewDayRecord returns NewDayRecordResolver implementation.
func (r *Resolver) NewDayRecord() NewDayRecordResolver { return &newDayRecordResolver{r} }

// NewInvoice returns NewInvoiceResolver implementation.
func (r *Resolver) NewInvoice() NewInvoiceResolver { return &newInvoiceResolver{r} }

type dayRecordResolver struct{ *Resolver }
type expenseLineResolver struct{ *Resolver }
type invoiceResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type payoutLineResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type newDayRecordResolver struct{ *Resolver }
type newInvoiceResolver struct{ *Resolver }
