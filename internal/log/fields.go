package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldSuccess     = "success"
	FieldReport      = "report"
	FieldAccount     = "account"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldRecordCount = "record_count"
	FieldFlagged     = "flagged"
	FieldGranularity = "granularity"
	FieldQuery       = "query"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldSheetsRef   = "sheets_ref"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentAnalysis = "analysis"
	ComponentSource   = "source"
	ComponentStorage  = "storage"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
	ComponentSheets   = "sheets"
	ComponentReport   = "report"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpImport   = "import"
	OpSelect   = "select"
	OpDetect   = "detect"
	OpExport   = "export"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpAppend   = "append"
	OpValidate = "validate"
	OpParse    = "parse"
	OpRender   = "render"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithDateRange adds the date window of an analysis call
func (f LogFields) WithDateRange(start, end string) LogFields {
	f[FieldStartDate] = start
	f[FieldEndDate] = end
	return f
}

// WithCharge adds the fields identifying one flagged charge
func (f LogFields) WithCharge(desc, amount, account string) LogFields {
	f[FieldDescription] = desc
	f[FieldAmount] = amount
	f[FieldAccount] = account
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
