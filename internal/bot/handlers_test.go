package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDArg(t *testing.T) {
	const usage = "Usage: /add_admin USER_ID"

	id, errReply := parseIDArg("12345", usage)
	assert.Equal(t, int64(12345), id)
	assert.Empty(t, errReply)

	// Отсутствующий аргумент → usage-подсказка.
	_, errReply = parseIDArg("", usage)
	assert.Equal(t, usage, errReply)

	// Лишние аргументы → usage-подсказка.
	_, errReply = parseIDArg("1 2", usage)
	assert.Equal(t, usage, errReply)

	// Нечисловой ID → отдельное сообщение.
	_, errReply = parseIDArg("abc", usage)
	assert.Equal(t, "Invalid user ID. Please provide a numeric user ID.", errReply)
}

func TestFormatIDList(t *testing.T) {
	got := formatIDList("List of users:", []int64{100, 200, 300})
	assert.Equal(t, "List of users:\n1. 100\n2. 200\n3. 300", got)
}
