package normalize

// Boolean sanitizes YAML 1.1 booleans kept as strings by yaml.v3.
//
// Returns "true" or "false" for common boolean values.
// Unknown values are returned as is.
func Boolean(v any) any {
	switch v {
	case "y", "Y", "yes", "Yes", "YES", "on", "On", "ON", "true", "True", "TRUE":
		return "true"
	case "n", "N", "no", "No", "NO", "off", "Off", "OFF", "false", "False", "FALSE":
		return "false"
	default:
		return v
	}
}
