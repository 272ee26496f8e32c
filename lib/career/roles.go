package careerhandler

import "strings"

// MaxRoles - сколько ролей запрашивается у ИИ
const MaxRoles = 2

var rolePrefixes = []string{"1.", "2."}

// ExtractRoles выделяет роли из ответа формата "1. Role - Reason".
// Строка подходит, если после trim начинается с "1." или "2." и содержит "-".
// Роль - часть строки до первого "-" без маркеров "1."/"2.".
// Если ИИ не соблюдает формат, возвращается пустой список.
func ExtractRoles(output string) []string {
	roles := make([]string, 0, MaxRoles)
	for _, line := range strings.Split(output, "\n") {
		if !hasRolePrefix(strings.TrimSpace(line)) || !strings.Contains(line, "-") {
			continue
		}
		role := strings.SplitN(line, "-", 2)[0]
		for _, prefix := range rolePrefixes {
			role = strings.ReplaceAll(role, prefix, "")
		}
		roles = append(roles, strings.TrimSpace(role))
		if len(roles) == MaxRoles {
			break
		}
	}
	return roles
}

func hasRolePrefix(line string) bool {
	for _, prefix := range rolePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
