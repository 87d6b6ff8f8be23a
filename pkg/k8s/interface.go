package k8s

type Client interface {
	// SumUnits adds the quantities a and b, and formats the result for the given metric
	SumUnits(a, b string, metric Metric) (string, error)
}
