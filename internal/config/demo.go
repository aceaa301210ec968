package config

// Demo returns the built-in sets, used when no sets file is found.
func Demo() Config {
	return Config{
		Version: currentVersion,
		Sets: []Set{
			{
				Name: "Integer",
				Type: IntType,
				Groups: [][]any{
					{1},
					{2, 3, 4},
					{5, 6},
					{7},
				},
			},
			{
				Name: "String",
				Type: StringType,
				Groups: [][]any{
					{"alpha"},
					{"beta", "gamma", "delta"},
					{
						"zeta", "eta", "theta", "iota", "kappa",
						"lambda", "mu", "nu", "xi", "omicron",
						"pi", "rho", "sigma", "tau", "upsilon",
					},
					{"phi", "chi"},
					{"psi", "omega"},
				},
			},
		},
	}
}
