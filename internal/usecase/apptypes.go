package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"auth-platform/internal/data/entity"
)

// AppTypeTable maps client-app names to the user type their users must
// have. It is configured as "<typeId>:<appName>,<typeId>:<appName>,...".
type AppTypeTable map[string]entity.UserType

func ParseAppTypeTable(raw string) (AppTypeTable, error) {
	table := make(AppTypeTable)

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		typeID, appName, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("malformed app mapping %q", pair)
		}

		id, err := strconv.Atoi(strings.TrimSpace(typeID))
		if err != nil {
			return nil, fmt.Errorf("malformed user type in app mapping %q: %w", pair, err)
		}

		table[strings.TrimSpace(appName)] = entity.UserType(id)
	}

	return table, nil
}

// Resolve looks up the user type for an App header value. Clients send
// "<appName> - <version>"; only the name part identifies the app.
func (t AppTypeTable) Resolve(headerValue string) (entity.UserType, bool) {
	appName, _, _ := strings.Cut(headerValue, " - ")
	userType, ok := t[strings.TrimSpace(appName)]
	return userType, ok
}
