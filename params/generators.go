package params

import "github.com/pqclabs/hqc/gf256"

// Reed-Solomon generator polynomials for each parameter set's outer code,
// in big-endian (high-degree-first) Polynomial form: degree 2*delta, one
// coefficient per byte. Transcribed from the reference HQC implementation's
// concatenated_codes/reed_solomon.rs constants.

var g1Poly = gf256.Polynomial{
	1, 181, 255, 82, 228, 69, 74, 110, 174, 210, 105, 118, 67, 173, 103, 139,
	21, 210, 65, 233, 242, 233, 73, 75, 111, 117, 176, 116, 153, 69, 89,
}

var g2Poly = gf256.Polynomial{
	1, 232, 29, 189, 50, 142, 246, 232, 15, 43, 82, 164, 238, 1, 158, 13,
	119, 158, 224, 134, 227, 210, 163, 50, 107, 40, 27, 104, 253, 24, 239, 216, 45,
}

var g3Poly = gf256.Polynomial{
	1, 187, 199, 48, 216, 188, 39, 47, 124, 64, 130, 178, 141, 27, 47, 232,
	8, 144, 191, 246, 4, 141, 99, 239, 152, 219, 180, 243, 31, 12, 123, 217,
	141, 183, 186, 210, 97, 115, 201, 71, 159, 215, 32, 101, 87, 123, 150, 71,
	148, 63, 240, 91, 124, 121, 200, 39, 49, 167, 49,
}
