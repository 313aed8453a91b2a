package builder

type buildError string

var (
	// ErrConfiguration is wrapped by every error about a setting that is missing or invalid at Build time
	ErrConfiguration = buildError("configuration error")
	// ErrShape is wrapped by every error about a byte source of the wrong length
	ErrShape = buildError("shape error")
	// ErrBuilderSpent is returned when Build is called on a Builder that already built
	ErrBuilderSpent = buildError("builder already used")
)

func (be buildError) Error() string {
	return string(be)
}
