package ir

import (
	"maps"
	"slices"
)

// Task is a task invocation inside a <Target>. The element name is the
// task name; attributes other than Condition and ContinueOnError are
// parameters.
type Task struct {
	Name            string
	Condition       string
	ContinueOnError string
	Params          map[string]string
	Outputs         []*TaskOutput
}

func NewTask(name string) *Task {
	return &Task{Name: name}
}

func (t *Task) WithCondition(c string) *Task {
	t.Condition = c
	return t
}

func (t *Task) SetParam(name, value string) *Task {
	if t.Params == nil {
		t.Params = map[string]string{}
	}
	t.Params[name] = value
	return t
}

// ParamNames returns the parameter names in ascending order.
func (t *Task) ParamNames() []string {
	return slices.Sorted(maps.Keys(t.Params))
}

// OutputProperty adds an <Output> storing param in a property.
func (t *Task) OutputProperty(param, property string) *TaskOutput {
	o := &TaskOutput{TaskParameter: param, PropertyName: property}
	t.Outputs = append(t.Outputs, o)
	return o
}

// OutputItem adds an <Output> storing param in an item type.
func (t *Task) OutputItem(param, item string) *TaskOutput {
	o := &TaskOutput{TaskParameter: param, ItemName: item}
	t.Outputs = append(t.Outputs, o)
	return o
}

// TaskOutput is an <Output> element. Exactly one of PropertyName and
// ItemName is set.
type TaskOutput struct {
	TaskParameter string
	PropertyName  string
	ItemName      string
	Condition     string
}

func (o *TaskOutput) WithCondition(c string) *TaskOutput {
	o.Condition = c
	return o
}

// nonTasks lists element names that have a meaning of their own inside a
// <Target> or elsewhere in a project.
var nonTasks = map[string]bool{
	"PropertyGroup":       true,
	"ItemGroup":           true,
	"OnError":             true,
	"Target":              true,
	"Choose":              true,
	"When":                true,
	"Otherwise":           true,
	"Import":              true,
	"ImportGroup":         true,
	"UsingTask":           true,
	"Output":              true,
	"Project":             true,
	"ProjectExtensions":   true,
	"ItemDefinitionGroup": true,
}

// IsTaskName reports whether name can be used for a task invocation
// inside a <Target>.
func IsTaskName(name string) bool {
	return name != "" && !nonTasks[name]
}
