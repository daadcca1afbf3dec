package variant

// Placeholder alternatives for the unused trailing slots of the V1
// through V7 aliases. They are unexported and carry no constructors,
// so a padded slot can never be assigned.
type (
	nul1 struct{}
	nul2 struct{}
	nul3 struct{}
	nul4 struct{}
	nul5 struct{}
	nul6 struct{}
	nul7 struct{}
)

// V1 through V8 name a Variant by the number of usable alternatives,
// padding the rest with placeholders.
type (
	V1[A any]                      = Variant[A, nul1, nul2, nul3, nul4, nul5, nul6, nul7]
	V2[A, B any]                   = Variant[A, B, nul2, nul3, nul4, nul5, nul6, nul7]
	V3[A, B, C any]                = Variant[A, B, C, nul3, nul4, nul5, nul6, nul7]
	V4[A, B, C, D any]             = Variant[A, B, C, D, nul4, nul5, nul6, nul7]
	V5[A, B, C, D, E any]          = Variant[A, B, C, D, E, nul5, nul6, nul7]
	V6[A, B, C, D, E, F any]       = Variant[A, B, C, D, E, F, nul6, nul7]
	V7[A, B, C, D, E, F, G any]    = Variant[A, B, C, D, E, F, G, nul7]
	V8[A, B, C, D, E, F, G, H any] = Variant[A, B, C, D, E, F, G, H]
)
