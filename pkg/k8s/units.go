// Package k8s handles Kubernetes resource quantities found in devfile containers
package k8s

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Metric selects how a summed quantity is formatted
type Metric string

const (
	MemoryMetric Metric = "memory"
	CpuMetric    Metric = "cpu"
)

// DefaultDecimals is the precision used when formatting quantities
const DefaultDecimals = 2

const (
	binaryBase  = 1024
	decimalBase = 1000
)

var (
	binarySuffixes  = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei"}
	decimalSuffixes = []string{"", "K", "M", "G", "T", "P", "E"}
	cpuSuffixes     = []string{"", "k", "m"}
)

type quantitySuffix struct {
	name   string
	factor float64
}

// quantitySuffixes lists the suffixes understood by UnitToNumber. Matching is case-insensitive,
// so "m" is read as the decimal "M" tier.
var quantitySuffixes = func() []quantitySuffix {
	var list []quantitySuffix
	for i, s := range binarySuffixes[1:] {
		list = append(list, quantitySuffix{name: strings.ToLower(s), factor: math.Pow(binaryBase, float64(i+1))})
	}
	for i, s := range decimalSuffixes[1:] {
		list = append(list, quantitySuffix{name: strings.ToLower(s), factor: math.Pow(decimalBase, float64(i+1))})
	}
	return list
}()

// Units implements Client
type Units struct{}

var _ Client = (*Units)(nil)

func NewUnitsClient() *Units {
	return &Units{}
}

// UnitToNumber converts a quantity such as "512Mi" or "1G" to its raw value
func (o *Units) UnitToNumber(quantity string) (float64, error) {
	lower := strings.ToLower(strings.TrimSpace(quantity))
	for _, suffix := range quantitySuffixes {
		if !strings.HasSuffix(lower, suffix.name) {
			continue
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(lower, suffix.name)), 64)
		if err != nil || number < 0 || math.IsNaN(number) {
			return 0, NewInvalidQuantityError(quantity)
		}
		value := number * suffix.factor
		if math.IsInf(value, 0) {
			return 0, NewInvalidQuantityError(quantity)
		}
		return value, nil
	}
	return 0, NewInvalidQuantityError(quantity)
}

// SumUnits adds two quantities and formats the result for the given metric
func (o *Units) SumUnits(a, b string, metric Metric) (string, error) {
	first, err := o.UnitToNumber(a)
	if err != nil {
		return "", err
	}
	second, err := o.UnitToNumber(b)
	if err != nil {
		return "", err
	}
	sum := first + second
	if math.IsInf(sum, 0) {
		return "", NewInvalidQuantityError(fmt.Sprintf("%s + %s", a, b))
	}
	switch metric {
	case MemoryMetric:
		return o.FormatMemory(sum, DefaultDecimals), nil
	case CpuMetric:
		return o.FormatCpu(sum, DefaultDecimals), nil
	}
	return "", fmt.Errorf("unknown metric %q", metric)
}

// FormatMemory formats value with the binary suffixes when it is an exact multiple of a
// power of 1024, with the decimal ones otherwise
func (o *Units) FormatMemory(value float64, decimals int) string {
	if value == 0 {
		return "0"
	}
	base, suffixes := float64(decimalBase), decimalSuffixes
	if o.IsBinaryUnit(value) {
		base, suffixes = binaryBase, binarySuffixes
	}
	i := tier(value, base, len(suffixes)-1)
	return formatNumber(round(value/math.Pow(base, float64(i)), decimals)) + suffixes[i]
}

// FormatCpu formats value over the ["", "k", "m"] tiers.
// Beyond the third tier the value is multiplied by (tier - 2) * 1000 and given the "m" suffix;
// for sums of millicores this gives back the expected "<n>m" string.
func (o *Units) FormatCpu(value float64, decimals int) string {
	if value == 0 {
		return "0"
	}
	i := tier(value, decimalBase, -1)
	computedValue := round(value/math.Pow(decimalBase, float64(i)), decimals)
	if i > 2 {
		return formatNumber(computedValue*float64(i-2)*1000) + "m"
	}
	return formatNumber(computedValue) + cpuSuffixes[i]
}

// IsBinaryUnit returns true if value divided by its largest power of 1024 is an integer
func (o *Units) IsBinaryUnit(value float64) bool {
	quotient := value / math.Pow(binaryBase, float64(tier(value, binaryBase, -1)))
	return quotient == math.Trunc(quotient)
}

// tier returns the largest i such that value / base^i >= 1, bounded by max when max >= 0
func tier(value float64, base float64, max int) int {
	i := 0
	for (max < 0 || i < max) && value/math.Pow(base, float64(i+1)) >= 1 {
		i++
	}
	return i
}

func round(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
