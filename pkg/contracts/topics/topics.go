package topics

const (
	// Eventos de partida
	MatchEventsRecorded = "match_events_recorded"

	// DLQs
	MatchEventsRecordedDLQ = "match_events_recorded_dlq"
)
