package trace

// Log field names shared by every tap.
const (
	FieldPipelineID = "pipeline_id"
	FieldStage      = "stage"
	FieldIndex      = "index"
	FieldValue      = "value"
	FieldCount      = "count"
)

const (
	msgPulled    = "element pulled"
	msgExhausted = "sequence exhausted"
)
