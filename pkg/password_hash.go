package pkg

import "golang.org/x/crypto/bcrypt"

const tokenHashCost = 12

// HashToken hashes an API token, the result is what goes into ACHILLES_API_TOKEN_HASH.
func HashToken(token string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(token), tokenHashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckTokenHash(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
