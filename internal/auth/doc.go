// Package auth implements the Codeforces API signing scheme for
// authorized requests.
//
// Every authorized call carries an apiSig parameter: a 6-character random
// prefix followed by the hex SHA-512 of a canonical request string that
// ends with the shared secret. The verifier recomputes the digest from the
// sorted request parameters, so parameter order in the canonical string is
// part of the contract.
package auth
