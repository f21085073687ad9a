package pkg

import "golang.org/x/crypto/bcrypt"

const DefaultTokenHashCost = 12

// HashToken returns the bcrypt hash stored in GYMRANK_API_SECRET_HASH.
// A cost outside bcrypt's range falls back to DefaultTokenHashCost.
func HashToken(token string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultTokenHashCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	return BytesToString(bytes), err
}

func CheckTokenHash(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
