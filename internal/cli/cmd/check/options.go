package check

var opts = &options{}

type options struct {
	CrosswalkOnly bool
	Quiet         bool
}

func init() {
	flags := Command.Flags()
	flags.BoolVar(&opts.CrosswalkOnly, "crosswalk-only", false,
		"Validate the crosswalk without reading stored items.")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Only print warnings and errors.")
}
