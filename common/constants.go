package common

const (
	SrcFileExtension = ".morpho"
	AsmFileExtension = ".masm"
	ProjectFileName  = "nanomorpho.toml"
	CompilerVersion  = "0.1.0"
)

// Defaults used when a source file is compiled without a project file.
const (
	DefaultEntry   = "main"
	DefaultRuntime = "BASIS"
)
