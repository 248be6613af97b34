package services

import (
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vendor-import-backend/db/models"
)

// BatchInput is everything one batch run needs: the ordered sheet contents,
// optional operator mapping overrides, and the identity of whoever started
// the import (carried onto every created record, never read from ambient
// session state).
type BatchInput struct {
	Sheet     *SheetData
	Overrides map[string]string
	CreatedBy string
}

// ImportEngine drives each row through map -> validate -> upsert, strictly in
// source order, one row at a time. Row-level problems are accumulated into
// the report and never abort the batch; only the caller's own I/O (reading
// the file, persisting the report) can fail the batch as a whole.
type ImportEngine struct {
	store  ImportStore
	logger *zap.Logger
}

func NewImportEngine(store ImportStore, logger *zap.Logger) *ImportEngine {
	return &ImportEngine{store: store, logger: logger}
}

// RunBatch processes one batch and returns its report. Writes for a row are
// best-effort: a failed dependent-entity write is recorded as a warning and
// later steps still run. Only a failed vendor create kills its row, since
// every dependent record needs the vendor.
func (e *ImportEngine) RunBatch(input BatchInput) *ImportReport {
	report := &ImportReport{
		TotalRows: len(input.Sheet.Rows),
		Mapping:   BuildHeaderMapping(input.Sheet.Headers, input.Overrides),
	}

	mappedRows := make([]map[string]string, len(input.Sheet.Rows))
	for i, row := range input.Sheet.Rows {
		mappedRows[i] = ApplyMapping(&report.Mapping, CleanRow(row.Cells))
	}

	report.Duplicates = FindDuplicates(mappedRows)

	for i, row := range input.Sheet.Rows {
		mapped := mappedRows[i]
		result := RowResult{
			Index:      row.Index,
			VendorName: mapped[FieldVendorName],
			Raw:        row.Cells,
		}

		outcome := ValidateRow(mapped, row.Index, e.store)
		result.Errors = outcome.Errors
		result.Warnings = outcome.Warnings

		if !outcome.IsValid() {
			result.State = RowRejected
			report.InvalidRows++
			report.Rows = append(report.Rows, result)
			continue
		}

		report.ValidRows++
		e.upsertRow(mapped, input.CreatedBy, report, &result)
		report.Rows = append(report.Rows, result)
	}

	e.logger.Info("import batch processed",
		zap.Int("total_rows", report.TotalRows),
		zap.Int("valid_rows", report.ValidRows),
		zap.Int("invalid_rows", report.InvalidRows),
		zap.Int("duplicates", len(report.Duplicates)),
		zap.Int("vendors_created", report.Counts.VendorsCreated),
		zap.Int("vendors_updated", report.Counts.VendorsUpdated),
	)
	return report
}

// upsertRow runs steps (a)-(e) for one valid row. Sibling entities already
// written for the row are never rolled back when a later step fails; partial
// progress is the contract.
func (e *ImportEngine) upsertRow(mapped map[string]string, createdBy string, report *ImportReport, result *RowResult) {
	rowNum := result.Index + 1

	// (a) find-or-create the vendor, by name first, then by primary email
	vendor, err := e.resolveVendor(mapped, createdBy, report)
	if err != nil {
		result.State = RowFailed
		result.Errors = append(result.Errors, "Row "+strconv.Itoa(rowNum)+": Failed to save vendor: "+err.Error())
		e.logger.Error("vendor upsert failed",
			zap.Int("row", rowNum),
			zap.String("vendor_name", mapped[FieldVendorName]),
			zap.Error(err))
		return
	}

	// Company resolution gates steps (b)-(d). The validator already warned
	// about a missing or unknown company code, so a nil company here just
	// skips those steps quietly.
	var company *models.Company
	if code := mapped[FieldCompanyCode]; code != "" {
		company, err = e.store.GetCompanyByCode(code)
		if err != nil {
			result.Warnings = append(result.Warnings, "Row "+strconv.Itoa(rowNum)+": Company lookup failed: "+err.Error())
			company = nil
		}
	}

	if company != nil {
		// (b) vendor code entry under the (vendor, company) association
		if mapped[FieldVendorCode] != "" {
			if warn := e.upsertCodeEntry(vendor, company, mapped, createdBy, report); warn != "" {
				result.Warnings = append(result.Warnings, "Row "+strconv.Itoa(rowNum)+": "+warn)
			}
		}

		// (c) address/registration details, once per (vendor, company)
		if warn := e.upsertCompanyDetail(vendor, company, mapped, createdBy, report); warn != "" {
			result.Warnings = append(result.Warnings, "Row "+strconv.Itoa(rowNum)+": "+warn)
		}

		// (d) multi-company association, one entry per company
		if warn := e.upsertCompanyLink(vendor, company, mapped, createdBy, report); warn != "" {
			result.Warnings = append(result.Warnings, "Row "+strconv.Itoa(rowNum)+": "+warn)
		}
	}

	// (e) payment details run regardless of company resolution
	if hasSufficientPaymentData(mapped) {
		if warn := e.upsertPaymentDetail(vendor, mapped, createdBy, report); warn != "" {
			result.Warnings = append(result.Warnings, "Row "+strconv.Itoa(rowNum)+": "+warn)
		}
	}

	result.VendorID = vendor.ID.String()
	result.State = RowCommitted
}

func (e *ImportEngine) resolveVendor(mapped map[string]string, createdBy string, report *ImportReport) (*models.Vendor, error) {
	vendor, err := e.store.GetVendorByName(mapped[FieldVendorName])
	if err != nil {
		return nil, err
	}
	if vendor == nil && mapped[FieldOfficeEmailPrimary] != "" {
		vendor, err = e.store.GetVendorByEmail(mapped[FieldOfficeEmailPrimary])
		if err != nil {
			return nil, err
		}
	}

	if vendor == nil {
		vendor = &models.Vendor{
			ID:         uuid.New(),
			VendorName: mapped[FieldVendorName],
			Status:     models.ActiveVendor,
			AddedVia:   models.BulkImportAddedVia,
			CreatedBy:  createdBy,
		}
		setStringPtr(&vendor.OfficeEmailPrimary, mapped, FieldOfficeEmailPrimary)
		setStringPtr(&vendor.OfficeEmailSecondary, mapped, FieldOfficeEmailSecondary)
		setStringPtr(&vendor.MobileNumber, mapped, FieldMobileNumber)
		setStringPtr(&vendor.Country, mapped, FieldCountry)

		// SAP verification flags default on for bulk-created vendors
		flag := true
		vendor.PayeeInDocument = &flag
		vendor.GRBasedInvVerification = &flag
		vendor.ServiceBasedInvVerification = &flag
		vendor.CheckDoubleInvoice = &flag

		if err := e.store.CreateVendor(vendor); err != nil {
			return nil, err
		}
		report.Counts.VendorsCreated++
		return vendor, nil
	}

	// Update only the fields this row actually carries; an absent cell never
	// nulls out a stored value.
	fields := map[string]interface{}{}
	if v, ok := mapped[FieldOfficeEmailPrimary]; ok {
		fields["office_email_primary"] = v
	}
	if v, ok := mapped[FieldOfficeEmailSecondary]; ok {
		fields["office_email_secondary"] = v
	}
	if v, ok := mapped[FieldMobileNumber]; ok {
		fields["mobile_number"] = v
	}
	if v, ok := mapped[FieldCountry]; ok {
		fields["country"] = v
	}
	if len(fields) > 0 {
		fields["updated_by"] = createdBy
		if err := e.store.UpdateVendorFields(vendor.ID, fields); err != nil {
			return nil, err
		}
	}
	report.Counts.VendorsUpdated++
	return vendor, nil
}

func (e *ImportEngine) upsertCodeEntry(vendor *models.Vendor, company *models.Company, mapped map[string]string, createdBy string, report *ImportReport) string {
	cvc, err := e.store.GetCompanyVendorCode(vendor.ID, company.ID)
	if err != nil {
		return "Failed to load company vendor code: " + err.Error()
	}
	if cvc == nil {
		cvc = &models.CompanyVendorCode{
			ID:        uuid.New(),
			VendorID:  vendor.ID,
			CompanyID: company.ID,
			CreatedBy: createdBy,
		}
		if err := e.store.CreateCompanyVendorCode(cvc); err != nil {
			return "Failed to create company vendor code: " + err.Error()
		}
	}

	vendorCode := mapped[FieldVendorCode]
	state := mapped[FieldState]
	gst := mapped[FieldGSTNo]

	entries, err := e.store.GetVendorCodeEntries(cvc.ID)
	if err != nil {
		return "Failed to load vendor code entries: " + err.Error()
	}
	for _, entry := range entries {
		if entry.VendorCode == vendorCode && derefOr(entry.State) == state && derefOr(entry.GSTNo) == gst {
			return "Vendor code entry '" + vendorCode + "' already exists for company " + company.CompanyCode + ", skipped"
		}
	}

	entry := &models.VendorCodeEntry{
		ID:                  uuid.New(),
		CompanyVendorCodeID: cvc.ID,
		VendorCode:          vendorCode,
	}
	setStringPtr(&entry.State, mapped, FieldState)
	setStringPtr(&entry.GSTNo, mapped, FieldGSTNo)
	if err := e.store.AppendVendorCodeEntry(entry); err != nil {
		return "Failed to append vendor code entry: " + err.Error()
	}
	report.Counts.CodeEntriesAdded++
	return ""
}

func (e *ImportEngine) upsertCompanyDetail(vendor *models.Vendor, company *models.Company, mapped map[string]string, createdBy string, report *ImportReport) string {
	existing, err := e.store.GetCompanyDetail(vendor.ID, company.ID)
	if err != nil {
		return "Failed to load company details: " + err.Error()
	}
	if existing != nil {
		return ""
	}

	detail := &models.CompanyDetail{
		ID:        uuid.New(),
		VendorID:  vendor.ID,
		CompanyID: company.ID,
		CreatedBy: createdBy,
	}
	setStringPtr(&detail.PANNumber, mapped, FieldCompanyPANNumber)
	setStringPtr(&detail.GSTNo, mapped, FieldGSTNo)
	setStringPtr(&detail.AddressLine1, mapped, FieldAddressLine1)
	setStringPtr(&detail.AddressLine2, mapped, FieldAddressLine2)
	setStringPtr(&detail.Country, mapped, FieldCountry)
	setStringPtr(&detail.NatureOfBusiness, mapped, FieldNatureOfBusiness)

	// Location masters are resolved by exact name and created on a miss;
	// auto-creating a state or city is a convenience, not an error path.
	if state := mapped[FieldState]; state != "" {
		if _, err := e.store.ResolveStateMaster(state, createdBy); err != nil {
			e.logger.Warn("state master resolution failed", zap.String("state", state), zap.Error(err))
		}
		detail.State = &state
	}
	if city := mapped[FieldCity]; city != "" {
		if _, err := e.store.ResolveCityMaster(city, createdBy); err != nil {
			e.logger.Warn("city master resolution failed", zap.String("city", city), zap.Error(err))
		}
		detail.City = &city
	}
	if pincode := mapped[FieldPincode]; pincode != "" {
		if _, err := e.store.ResolvePincodeMaster(pincode, createdBy); err != nil {
			e.logger.Warn("pincode master resolution failed", zap.String("pincode", pincode), zap.Error(err))
		}
		detail.Pincode = &pincode
	}

	if err := e.store.CreateCompanyDetail(detail); err != nil {
		return "Failed to create company details: " + err.Error()
	}
	report.Counts.CompanyDetailsCreated++
	return ""
}

func (e *ImportEngine) upsertCompanyLink(vendor *models.Vendor, company *models.Company, mapped map[string]string, createdBy string, report *ImportReport) string {
	existing, err := e.store.GetMultiCompanyLink(vendor.ID, company.ID)
	if err != nil {
		return "Failed to load company link: " + err.Error()
	}
	if existing != nil {
		return "" // one entry per company, later rows skip silently
	}

	link := &models.MultiCompanyLink{
		ID:        uuid.New(),
		VendorID:  vendor.ID,
		CompanyID: company.ID,
		CreatedBy: createdBy,
	}
	setStringPtr(&link.PurchaseOrganization, mapped, FieldPurchaseOrganization)
	setStringPtr(&link.AccountGroup, mapped, FieldAccountGroup)
	setStringPtr(&link.TermsOfPayment, mapped, FieldTermsOfPayment)
	setStringPtr(&link.OrderCurrency, mapped, FieldOrderCurrency)
	setStringPtr(&link.Incoterms, mapped, FieldIncoterms)
	setStringPtr(&link.ReconciliationAccount, mapped, FieldReconciliationAccount)

	if err := e.store.CreateMultiCompanyLink(link); err != nil {
		return "Failed to create company link: " + err.Error()
	}
	report.Counts.CompanyLinksAdded++
	return ""
}

var internationalFields = []string{
	FieldBeneficiaryName,
	FieldBeneficiaryBankName,
	FieldBeneficiarySwiftCode,
	FieldBeneficiaryIBAN,
	FieldBeneficiaryAccountNo,
	FieldBeneficiaryBankAddress,
	FieldBeneficiaryCurrency,
}

// hasSufficientPaymentData gates step (e): at least one basic bank field, or
// at least two international-banking fields.
func hasSufficientPaymentData(mapped map[string]string) bool {
	if mapped[FieldBankName] != "" || mapped[FieldIFSCCode] != "" || mapped[FieldAccountNumber] != "" {
		return true
	}
	intl := 0
	for _, f := range internationalFields {
		if mapped[f] != "" {
			intl++
		}
	}
	return intl >= 2
}

func (e *ImportEngine) upsertPaymentDetail(vendor *models.Vendor, mapped map[string]string, createdBy string, report *ImportReport) string {
	// The bank name is checked against the bank master when we have one on
	// file; an unknown bank is only worth a note in the log.
	if bankName := mapped[FieldBankName]; bankName != "" {
		if bank, err := e.store.LookupBankMaster(bankName); err == nil && bank == nil {
			e.logger.Info("bank not in master list", zap.String("bank_name", bankName), zap.String("vendor", vendor.VendorName))
		}
	}

	detail, err := e.store.GetPaymentDetail(vendor.ID)
	if err != nil {
		return "Failed to load payment details: " + err.Error()
	}

	if detail == nil {
		detail = &models.PaymentDetail{
			ID:        uuid.New(),
			VendorID:  vendor.ID,
			CreatedBy: createdBy,
		}
		setStringPtr(&detail.BankName, mapped, FieldBankName)
		setStringPtr(&detail.IFSCCode, mapped, FieldIFSCCode)
		setStringPtr(&detail.AccountNumber, mapped, FieldAccountNumber)
		setStringPtr(&detail.NameOfAccountHolder, mapped, FieldNameOfAccountHolder)
		setStringPtr(&detail.TypeOfAccount, mapped, FieldTypeOfAccount)
		setStringPtr(&detail.Currency, mapped, FieldCurrency)
		if err := e.store.CreatePaymentDetail(detail); err != nil {
			return "Failed to create payment details: " + err.Error()
		}
		report.Counts.PaymentDetailsCreated++
	} else {
		fields := map[string]interface{}{}
		for field, column := range map[string]string{
			FieldBankName:            "bank_name",
			FieldIFSCCode:            "ifsc_code",
			FieldAccountNumber:       "account_number",
			FieldNameOfAccountHolder: "name_of_account_holder",
			FieldTypeOfAccount:       "type_of_account",
			FieldCurrency:            "currency",
		} {
			if v, ok := mapped[field]; ok {
				fields[column] = v
			}
		}
		if len(fields) > 0 {
			fields["updated_by"] = createdBy
			if err := e.store.UpdatePaymentDetailFields(detail.ID, fields); err != nil {
				return "Failed to update payment details: " + err.Error()
			}
		}
		report.Counts.PaymentDetailsUpdated++
	}

	// Nested bank blocks are replaced wholesale, never merged.
	domestic := extractDomesticBlock(detail.ID, mapped)
	international := extractInternationalBlock(detail.ID, mapped)
	intermediate := extractIntermediateBlock(detail.ID, mapped)
	if domestic != nil || international != nil || intermediate != nil {
		if err := e.store.ReplaceBankBlocks(detail.ID, domestic, international, intermediate); err != nil {
			return "Failed to replace bank blocks: " + err.Error()
		}
	}
	return ""
}

func extractDomesticBlock(paymentDetailID uuid.UUID, mapped map[string]string) *models.DomesticBankBlock {
	block := &models.DomesticBankBlock{ID: uuid.New(), PaymentDetailID: paymentDetailID}
	any := false
	any = setStringPtr(&block.BankName, mapped, FieldBankName) || any
	any = setStringPtr(&block.IFSCCode, mapped, FieldIFSCCode) || any
	any = setStringPtr(&block.AccountNumber, mapped, FieldAccountNumber) || any
	any = setStringPtr(&block.NameOfAccountHolder, mapped, FieldNameOfAccountHolder) || any
	any = setStringPtr(&block.TypeOfAccount, mapped, FieldTypeOfAccount) || any
	if !any {
		return nil
	}
	return block
}

func extractInternationalBlock(paymentDetailID uuid.UUID, mapped map[string]string) *models.InternationalBankBlock {
	block := &models.InternationalBankBlock{ID: uuid.New(), PaymentDetailID: paymentDetailID}
	any := false
	any = setStringPtr(&block.BeneficiaryName, mapped, FieldBeneficiaryName) || any
	any = setStringPtr(&block.BeneficiaryBankName, mapped, FieldBeneficiaryBankName) || any
	any = setStringPtr(&block.BeneficiarySwiftCode, mapped, FieldBeneficiarySwiftCode) || any
	any = setStringPtr(&block.BeneficiaryIBAN, mapped, FieldBeneficiaryIBAN) || any
	any = setStringPtr(&block.BeneficiaryAccountNo, mapped, FieldBeneficiaryAccountNo) || any
	any = setStringPtr(&block.BeneficiaryBankAddress, mapped, FieldBeneficiaryBankAddress) || any
	any = setStringPtr(&block.BeneficiaryCurrency, mapped, FieldBeneficiaryCurrency) || any
	if !any {
		return nil
	}
	return block
}

func extractIntermediateBlock(paymentDetailID uuid.UUID, mapped map[string]string) *models.IntermediateBankBlock {
	block := &models.IntermediateBankBlock{ID: uuid.New(), PaymentDetailID: paymentDetailID}
	any := false
	any = setStringPtr(&block.IntermediateBankName, mapped, FieldIntermediateBankName) || any
	any = setStringPtr(&block.IntermediateSwiftCode, mapped, FieldIntermediateSwiftCode) || any
	any = setStringPtr(&block.IntermediateAccountNo, mapped, FieldIntermediateAccountNo) || any
	if !any {
		return nil
	}
	return block
}

// setStringPtr assigns *dst from the mapped row when the field is present,
// reporting whether an assignment happened.
func setStringPtr(dst **string, mapped map[string]string, field string) bool {
	if v, ok := mapped[field]; ok && v != "" {
		value := v
		*dst = &value
		return true
	}
	return false
}

func derefOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
