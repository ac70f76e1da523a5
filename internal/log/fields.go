package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldProjectID   = "project_id"
	FieldProjectName = "project_name"
	FieldWasteType   = "waste_type"
	FieldTotalKg     = "total_kg"
	FieldRecycledKg  = "recycled_kg"
	FieldRate        = "recycling_rate"
	FieldLocation    = "location"
	FieldProjectType = "project_type"
	FieldPath        = "path"
	FieldSeed        = "seed"
	FieldDuration    = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentLedger    = "ledger"
	ComponentFixture   = "fixture"
	ComponentExport    = "export"
	ComponentReporting = "reporting"
	ComponentConfig    = "config"
)

// Operations defines standard operation names
const (
	OpRegister = "register"
	OpLog      = "log"
	OpSummary  = "summary"
	OpStats    = "statistics"
	OpGaps     = "opportunities"
	OpExport   = "export"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
	OpPopulate = "populate"
	OpValidate = "validate"
)
