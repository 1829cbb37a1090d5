// Package domain содержит доменные сущности фронтенд-шлюза.
package domain

// CredentialPair представляет пару токенов, выданную бекендом.
// Пара всегда заменяется целиком: бекенд может ротировать оба значения
// при каждом обновлении.
type CredentialPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Empty сообщает, хранит ли пара хотя бы один токен.
func (p CredentialPair) Empty() bool {
	return p.AccessToken == "" && p.RefreshToken == ""
}
