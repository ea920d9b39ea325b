package formats

var opts = &options{}

type options struct {
	Indent string
}

func init() {
	flags := Command.Flags()
	flags.StringVar(&opts.Indent, "indent", "  ",
		"Indentation of the XML output. Empty for compact output.")
}
