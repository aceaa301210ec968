package normalize

// List ensures yaml is a list.
//
// Wraps scalar or map in a list. Returns list as is.
func List(yaml any) (list []any) {
	switch v := yaml.(type) {
	case []any:
		list = v
	case []string:
		for _, s := range v {
			list = append(list, s)
		}
	case []int:
		for _, i := range v {
			list = append(list, i)
		}
	default:
		list = append(list, yaml)
	}
	return
}
