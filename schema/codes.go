package schema

// Code tables referenced by more than one segment schema or by the
// transactions package's semantic validators. These are deliberately small,
// representative subsets of the full external code lists (X12 005010
// maintains them separately from the transaction-set TR3s) — enough to
// exercise shape and semantic checks without embedding the entire registry.

// EntityIdentifierCodes are common NM1-01 values seen in 270/271 and
// 276/277 loops.
var EntityIdentifierCodes = []string{
	"1P", // Provider
	"36", // Employer
	"40", // Receiver
	"41", // Submitter
	"85", // Billing Provider
	"87", // Pay-to Provider
	"IL", // Insured or Subscriber
	"QC", // Patient
	"PR", // Payer
}

// EligibilityServiceTypeCodes are representative EQ01/EB03 service type
// codes.
var EligibilityServiceTypeCodes = []string{
	"1",  // Medical Care
	"30", // Health Benefit Plan Coverage
	"33", // Chiropractic
	"35", // Dental Care
	"47", // Hospital
	"86", // Emergency Services
	"88", // Pharmacy
	"98", // Professional (Physician) Visit - Office
}

// EligibilityBenefitInformationCodes are EB01 values.
var EligibilityBenefitInformationCodes = []string{
	"1", // Active Coverage
	"6", // Inactive
	"A", // Co-Insurance
	"B", // Co-Payment
	"C", // Deductible
	"F", // Limitations
	"G", // Out of Pocket (Stop Loss)
}

// ClaimStatusCategoryCodes are STC01-1 values (health-care claim status
// category codes).
var ClaimStatusCategoryCodes = []string{
	"A0", // Acknowledgement/Receipt
	"A1", // Acknowledgement/Forwarded
	"A3", // Acknowledgement/Returned as unprocessable
	"F0", // Finalized
	"F1", // Finalized/Payment
	"F2", // Finalized/Adjudication Complete - No Payment
	"P0", // Pending
	"P1", // Pending/In Process
}

// ClaimFrequencyTypeCodes are CLM05-3 values.
var ClaimFrequencyTypeCodes = []string{
	"1", // Original
	"7", // Replacement
	"8", // Void/Cancel
}
