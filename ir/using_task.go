package ir

// UsingTask is a <UsingTask> declaration. At least one of AssemblyFile,
// AssemblyName and TaskFactory says where the task comes from.
type UsingTask struct {
	TaskName     string
	AssemblyFile string
	AssemblyName string
	TaskFactory  string
	Condition    string
	Runtime      string
	Architecture string
}

func (u *UsingTask) FromFile(path string) *UsingTask {
	u.AssemblyFile = path
	return u
}

func (u *UsingTask) FromAssembly(name string) *UsingTask {
	u.AssemblyName = name
	return u
}

func (u *UsingTask) FromFactory(factory string) *UsingTask {
	u.TaskFactory = factory
	return u
}

// HasSource reports whether u names where the task comes from.
func (u *UsingTask) HasSource() bool {
	return u.AssemblyFile != "" || u.AssemblyName != "" || u.TaskFactory != ""
}
