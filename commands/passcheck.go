package commands

type PassCheckCommand struct {
	Evaluate EvaluateCommand `command:"evaluate" description:"Evaluate the strength of a single password" alias:"eval"`
	Audit    AuditCommand    `command:"audit" description:"Evaluate a candidate list, one password per line"`
	Update   UpdateCommand   `command:"update" description:"Update passcheck to the latest version"`
	Version  VersionCommand  `command:"version" description:"Displays passcheck version" alias:"V"`
}

var PassCheck PassCheckCommand
