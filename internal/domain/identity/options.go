package identity

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithClubPolicy sets the club-per-year policy.
func WithClubPolicy(p ClubPolicy) Option {
	return func(r *Resolver) {
		if p == ClubPolicySingle || p == ClubPolicyAll {
			r.policy = p
		}
	}
}
