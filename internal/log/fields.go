package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldSuccess    = "success"
	FieldDuration   = "duration_ms"
	FieldCommand    = "command"
	FieldContactID  = "contact_id"
	FieldContact    = "contact_name"
	FieldClassID    = "class_id"
	FieldMonths     = "months"
	FieldFeesCents  = "fees_cents"
	FieldEventID    = "event_id"
	FieldLedgerRef  = "ledger_ref"
	FieldBackend    = "backend"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentShell   = "shell"
	ComponentCommand = "command"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentLedger  = "ledger"
	ComponentCache   = "cache"
	ComponentHTTP    = "http"
	ComponentExport  = "export"
)

// Operations defines standard operation names
const (
	OpExecute  = "execute"
	OpLoad     = "load"
	OpSave     = "save"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpAppend   = "append"
	OpExport   = "export"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds the error message; a nil error adds nothing.
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithCommand(word string) LogFields {
	f[FieldCommand] = word
	return f
}

// WithPayment adds the fields identifying a payment event.
func (f LogFields) WithPayment(eventID, contactID, contactName, classID string, months []string, feesCents int64) LogFields {
	f[FieldEventID] = eventID
	f[FieldContactID] = contactID
	f[FieldContact] = contactName
	f[FieldClassID] = classID
	f[FieldMonths] = months
	f[FieldFeesCents] = feesCents
	return f
}

func (f LogFields) WithHTTP(method, path string, statusCode int, durationMs int64) LogFields {
	f[FieldMethod] = method
	f[FieldPath] = path
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = durationMs
	f[FieldSuccess] = statusCode < 400
	return f
}

// ToSlice converts LogFields to key/value pairs for slog.
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
