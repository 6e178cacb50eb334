package model

import "time"

// ContractType identifies the smart-contract framework a source file
// appears to target, detected heuristically from text markers.
type ContractType string

const (
	ContractInk      ContractType = "ink"
	ContractCosmWasm ContractType = "cosmwasm"
	ContractAnchor   ContractType = "anchor"
	ContractNear     ContractType = "near"
	ContractGeneric  ContractType = "generic"
	// ContractUnknown is forced when the source fails to parse.
	ContractUnknown ContractType = "unknown"
)

const (
	VisibilityPublic     = "pub"
	VisibilityRestricted = "pub(restricted)"
	VisibilityPrivate    = "private"
)

type Parameter struct {
	Name      string `json:"name"`
	ParamType string `json:"param_type"`
	IsMutable bool   `json:"is_mutable"`
}

type Function struct {
	Name       string      `json:"name"`
	Visibility string      `json:"visibility"`
	Parameters []Parameter `json:"parameters"`
	ReturnType *string     `json:"return_type"`
	Attributes []string    `json:"attributes"`
	IsAsync    bool        `json:"is_async"`
	IsUnsafe   bool        `json:"is_unsafe"`
	LineStart  int         `json:"line_start"`
	LineEnd    int         `json:"line_end"`
}

type Field struct {
	Name       string `json:"name"`
	FieldType  string `json:"field_type"`
	Visibility string `json:"visibility"`
}

type Struct struct {
	Name       string   `json:"name"`
	Visibility string   `json:"visibility"`
	Fields     []Field  `json:"fields"`
	Attributes []string `json:"attributes"`
	LineStart  int      `json:"line_start"`
	LineEnd    int      `json:"line_end"`
}

type Trait struct {
	Name       string   `json:"name"`
	Visibility string   `json:"visibility"`
	Methods    []string `json:"methods"`
	Attributes []string `json:"attributes"`
	LineStart  int      `json:"line_start"`
	LineEnd    int      `json:"line_end"`
}

type Impl struct {
	TargetType string   `json:"target_type"`
	TraitName  *string  `json:"trait_name"`
	Methods    []string `json:"methods"`
	LineStart  int      `json:"line_start"`
	LineEnd    int      `json:"line_end"`
}

// UnsafeBlock is reserved for a future pass over function bodies; the
// analyzer does not populate it yet but the report always carries the field.
type UnsafeBlock struct {
	LineStart int    `json:"line_start"`
	LineEnd   int    `json:"line_end"`
	Context   string `json:"context"`
}

// AnalysisReport is the full declaration inventory extracted from one source
// file. Either the record lists are populated and Errors is empty, or the
// parse failed and everything except ContractType and Errors is empty.
type AnalysisReport struct {
	Functions    []Function    `json:"functions"`
	Structs      []Struct      `json:"structs"`
	Traits       []Trait       `json:"traits"`
	ImplBlocks   []Impl        `json:"impl_blocks"`
	UnsafeBlocks []UnsafeBlock `json:"unsafe_blocks"`
	Attributes   []string      `json:"attributes"`
	Uses         []string      `json:"uses"`
	ContractType ContractType  `json:"contract_type"`
	Errors       []string      `json:"errors"`
}

// NewReport returns a report whose lists all marshal as [] rather than null.
func NewReport() *AnalysisReport {
	return &AnalysisReport{
		Functions:    []Function{},
		Structs:      []Struct{},
		Traits:       []Trait{},
		ImplBlocks:   []Impl{},
		UnsafeBlocks: []UnsafeBlock{},
		Attributes:   []string{},
		Uses:         []string{},
		Errors:       []string{},
	}
}

// ParseFailed reports whether the underlying source could not be parsed.
func (r *AnalysisReport) ParseFailed() bool { return len(r.Errors) > 0 }

// FileReport pairs a report with the file it was produced from in batch mode.
type FileReport struct {
	File        string          `json:"file"`
	Fingerprint string          `json:"fingerprint"`
	Report      *AnalysisReport `json:"report"`
}

type ScanRequest struct {
	Path       string
	ConfigPath string
	NoCache    bool
}

type ScanResult struct {
	Reports []FileReport  `json:"reports"`
	Elapsed time.Duration `json:"elapsed"`
}
