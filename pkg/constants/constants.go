// Package constants holds names and defaults shared across packages.
package constants

// CLIName is the name of the executable.
const CLIName = "boomi-validate"

// DefaultReportFile is the markdown report written to the working directory
// on every run.
const DefaultReportFile = "boomi-xml-validation-results.md"

// DefaultConfigFile is loaded from the working directory when present and no
// --config flag is given.
const DefaultConfigFile = ".boomi-validate.yml"

// StepSummaryEnvVar names the file GitHub Actions renders as the job summary.
const StepSummaryEnvVar = "GITHUB_STEP_SUMMARY"

// Environment overrides for configuration values.
const (
	RecoverEnvVar = "BOOMI_VALIDATE_RECOVER"
	MaxHitsEnvVar = "BOOMI_VALIDATE_MAX_HITS"
)

// Process exit codes.
const (
	ExitPassed  = 0
	ExitFailed  = 1
	ExitNoFiles = 2
)

// DefaultMaxReportedHits caps how many distinct blocklisted components are
// listed in a rule message before a "(+N more)" suffix.
const DefaultMaxReportedHits = 5

// MaxReportedHitsLimit is the upper bound accepted from config or environment.
const MaxReportedHitsLimit = 100

// DefaultMaxFileBytes rejects unreasonably large process definitions.
const DefaultMaxFileBytes int64 = 64 << 20

// DefaultBlocklist lists componentId values that must not appear in process
// definitions unless a config file replaces the list.
var DefaultBlocklist = []string{
	"ab12cd34-5678-90ef-ghij-klmnopqrstuv",
	"ff00aa11-2233-4455-6677-889900bbccdd",
	"151411ac-6724-21ae-giz-00000000azz1a",
	"12345678-9abc-def0-1234-56789abcdef0",
}

// Shape attributes inspected by the rules.
const (
	AttrShapeType   = "shapetype"
	AttrUserLabel   = "userlabel"
	AttrLabel       = "label"
	AttrComponentID = "componentId"
)

// ShapeTypeReturnDocuments is the shape type expected on the error path.
const ShapeTypeReturnDocuments = "returndocuments"

// ErrorLabelKeyword must appear (case-insensitively) in the label of a
// returndocuments shape.
const ErrorLabelKeyword = "error"

// NoLabelPlaceholder stands in for blank labels in rule messages.
const NoLabelPlaceholder = "(no label)"

// ReportTitle heads every markdown report.
const ReportTitle = "## 🍫 Boomi XML Validation Results"
