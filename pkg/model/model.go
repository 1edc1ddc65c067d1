package model

// Sheet names inside the attendance spreadsheet. The spreadsheet structure is
// owned by the intake forms, so these are fixed, not configurable.
const (
	RawLogSheet        = "REGISTRO_DIARIO"
	LedgerSheet        = "REGISTRO_CALENDARIO"
	ScheduleSheet      = "HORARIOLABORAL"
	PaymentsSheet      = "PAGOS"
	PaymentStatusSheet = "PAGOSCHECK"
	SummarySheet       = "RESUMEN"
)

// Raw log columns.
const (
	ColID              = "ID"
	ColCollaborator    = "Colaborador"
	ColStage           = "Etapa"
	ColDate            = "Fecha"
	ColTime            = "Hora"
	ColDescription     = "Descripcion"
	ColOvertimeCapture = "Captura de petición de horas extra"
)

// Ledger columns. The ledger shares Colaborador/Descripcion names with the
// raw log; the rest are ledger-only.
const (
	ColEntryTime       = "HoraEntrada"
	ColExitTime        = "HoraSalida"
	ColEntryDate       = "FechaEntrada"
	ColExitDate        = "FechaSalida"
	ColExtratime       = "Extratime"
	ColMinutes         = "Minutos"
	ColRegularMinutes  = "Minutos_normales"
	ColOvertimeMinutes = "Minutos_extras"
	ColLedgerID        = "ID_Calendario"
	ColSourceID        = "ID_Registro"
)

// Payment table columns (PAGOS / PAGOSCHECK).
const (
	ColPeriodStart = "periodo_inicio"
	ColPeriodEnd   = "periodo_fin"
	ColPayday      = "fecha_pago"
	ColCheck       = "check"
)

// PaymentReady marks a payment whose payday has passed.
const PaymentReady = "Listo"

// Schedule table columns.
const (
	ColScheduleDays = "dias"
	ColWindowStart  = "hora_entrada"
	ColWindowEnd    = "hora_salida"
)

// Clock event stages as the intake form records them.
const (
	StageEntry = "Entrada"
	StageExit  = "Salida"
)

// Extratime column values.
const (
	OvertimeYes = "Si"
	OvertimeNo  = "No"
)

// RawEvent is one clock-in/clock-out event from the append-only raw log.
// Events are immutable; their row order defines recency.
type RawEvent struct {
	ID              string
	Collaborator    string
	Stage           string
	Date            string
	Time            string
	Description     string
	OvertimeCapture string
}

// LedgerRecord is one entry/exit pairing attempt in the derived ledger.
// All values stay as sheet text; numeric and clock parsing happens at the
// point of computation so a malformed cell only affects its own record.
type LedgerRecord struct {
	// Row is the 0-based data row this record occupies in the ledger sheet,
	// used to address batched cell patches.
	Row int

	LedgerID     string
	Collaborator string
	EntryTime    string
	EntryDate    string
	ExitTime     string
	ExitDate     string
	Description  string
	Extratime    string

	TotalMinutes    string
	RegularMinutes  string
	OvertimeMinutes string

	// SourceID references the raw Entry event that created this record.
	SourceID string
}

// Open reports whether the record is still waiting for its exit event.
func (r LedgerRecord) Open() bool {
	return r.ExitTime == ""
}

// NeedsMinutes reports whether the record is closed but its worked minutes
// have not been computed yet. Once TotalMinutes is set the record is final.
func (r LedgerRecord) NeedsMinutes() bool {
	return r.ExitTime != "" && r.TotalMinutes == ""
}

// ScheduleRule is one weekly work-window rule. Days is either a single
// weekday name or an inclusive "Day1-Day2" range in Spanish.
type ScheduleRule struct {
	Collaborator string
	Days         string
	WindowStart  string
	WindowEnd    string
}
