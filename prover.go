package zkauth

// Prover is the role interface implemented by each group flavor (dlog,
// eccurve) for the registration and challenge-response side of the
// Chaum-Pedersen protocol. All values cross this boundary as opaque
// Element/Scalar envelopes; the flavor converts to and from its native
// representation internally.
type Prover interface {
	// GenerateRegistrationX draws a fresh uniform-random registration
	// secret, independent of any password.
	GenerateRegistrationX() Scalar

	// ComputeRegistrationX derives a deterministic registration secret
	// from a password, so the same password always re-derives the same x.
	ComputeRegistrationX(password string) Scalar

	// ComputeRegistrationY1Y2 computes the public commitments y1 = g^x,
	// y2 = h^x (multiplicative) or y1 = x*g, y2 = x*h (additive).
	ComputeRegistrationY1Y2(x Scalar) (y1, y2 Element, err error)

	// GenerateChallengeK draws a fresh uniform-random commitment secret.
	GenerateChallengeK() Scalar

	// ComputeChallengeCommitmentR1R2 computes the commitment r1 = g^k,
	// r2 = h^k (multiplicative) or r1 = k*g, r2 = k*h (additive).
	ComputeChallengeCommitmentR1R2(k Scalar) (r1, r2 Element, err error)

	// ComputeChallengeResponseS computes the challenge response s from
	// the registration secret x, commitment secret k, and verifier
	// challenge c.
	ComputeChallengeResponseS(x, k, c Scalar) (Scalar, error)
}
