package logging

// Standardized structured logging keys. Commands and services use these
// instead of ad hoc strings so log lines stay greppable across the tool.
const (
	// FieldComponent names the subsystem emitting the record.
	FieldComponent = "component"
	// FieldShow is the show name of the node being operated on.
	FieldShow = "show"
	// FieldCategory is the category name of the node being operated on.
	FieldCategory = "category"
	// FieldGroup is the group (sequence/asset type) name.
	FieldGroup = "group"
	// FieldUnit is the unit (shot/asset) name.
	FieldUnit = "unit"
	// FieldPart is the part (discipline) name.
	FieldPart = "part"
	// FieldTask is the task name inside a part.
	FieldTask = "task"
	// FieldProgram is the program key a scene operation targets.
	FieldProgram = "program"
	// FieldVersion is the scene version token, e.g. "v003".
	FieldVersion = "version"
	// FieldLaunchID correlates a detached scene-open with its later
	// exit report.
	FieldLaunchID = "launch_id"
	// FieldPath is an absolute filesystem path involved in the record.
	FieldPath = "path"
)
