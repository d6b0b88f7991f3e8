package ir

// Constructors for commonly used tasks.

func Message(text, importance string) *Task {
	t := NewTask("Message").SetParam("Text", text)
	if importance != "" {
		t.SetParam("Importance", importance)
	}
	return t
}

func Warning(text string) *Task {
	return NewTask("Warning").SetParam("Text", text)
}

func Error(text string) *Task {
	return NewTask("Error").SetParam("Text", text)
}

func Exec(command string) *Task {
	return NewTask("Exec").SetParam("Command", command)
}

func CallTarget(targets ...string) *Task {
	return NewTask("CallTarget").SetParam("Targets", JoinList(targets))
}

func Copy(sourceFiles, destinationFolder string) *Task {
	return NewTask("Copy").
		SetParam("SourceFiles", sourceFiles).
		SetParam("DestinationFolder", destinationFolder)
}

func MakeDir(directories string) *Task {
	return NewTask("MakeDir").SetParam("Directories", directories)
}

func Delete(files string) *Task {
	return NewTask("Delete").SetParam("Files", files)
}
