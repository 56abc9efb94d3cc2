package indicators

// increasingValues generates a strictly increasing test sequence
func increasingValues(count int) []float64 {
	values := make([]float64, count)
	for i := range values {
		values[i] = 100.0 + float64(i)
	}
	return values
}

// decreasingValues generates a strictly decreasing test sequence
func decreasingValues(count int) []float64 {
	values := make([]float64, count)
	for i := range values {
		values[i] = 100.0 - float64(i)
	}
	return values
}

// flatValues generates a constant test sequence
func flatValues(count int, value float64) []float64 {
	values := make([]float64, count)
	for i := range values {
		values[i] = value
	}
	return values
}

// nonNilCount counts the non-nil entries of a nullable series
func nonNilCount(series []*float64) int {
	count := 0
	for _, v := range series {
		if v != nil {
			count++
		}
	}
	return count
}
