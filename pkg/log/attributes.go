// Standard attribute keys for preprocessing operations. Using the same keys
// everywhere keeps pipeline logs filterable.

package log

// Operation context.
const (
	// ComponentKey identifies the package performing the operation,
	// e.g. "preprocess", "stats".
	ComponentKey = "component"

	// OperationKey names the operation, e.g. "discretize", "normalize".
	OperationKey = "operation"

	// MethodKey names the discretization method, e.g. "EqualFreq",
	// "EntropyMDL".
	MethodKey = "method"
)

// Data shape.
const (
	// VariableKey names the variable being processed.
	VariableKey = "variable"

	// VariablesKey counts variables processed by a domain-level operation.
	VariablesKey = "variables"

	// SamplesKey counts rows of the table being processed.
	SamplesKey = "samples"

	// BinsKey counts the intervals produced for a variable.
	BinsKey = "bins"

	// CutPointsKey carries the cut points produced for a variable.
	CutPointsKey = "cut_points"

	// DroppedKey counts variables removed by the clean policy.
	DroppedKey = "dropped"
)

// Standard operation names.
const (
	OperationDiscretize = "discretize"
	OperationNormalize  = "normalize"
	OperationLoadConfig = "load_config"
)
