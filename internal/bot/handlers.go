// handlers.go — обработчики команд. Тексты ответов фиксированы:
// каждая отклонённая операция получает явный человекочитаемый ответ.
package bot

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sensiloles/quit-smoking-bot/internal/features/notify"
)

const botName = "Quit Smoking Bot"

// adminCommands перечисляются новому админу в приветственном сообщении.
var adminCommands = []string{
	"/notify_all",
	"/list_users",
	"/list_admins",
	"/add_admin",
	"/remove_admin",
}

const welcomeMessage = "👋 Welcome to " + botName + "!\n\n" +
	"I'll help you track your smoke-free period and motivate you with quotes. " +
	"You'll also get a prize fund that increases every month!\n\n" +
	"Use /status to check your progress."

const permissionDenied = "You don't have permission to use this command."

// handleStart регистрирует пользователя. Bootstrap-правило: если админов
// ещё нет, первый обратившийся становится и первым админом, и пользователем.
func (b *Bot) handleStart(chatID, userID int64) {
	if !b.registry.HasAdmins() {
		b.registry.AddAdmin(userID)
		log.WithField("user_id", userID).Info("Первый пользователь назначен админом")
		b.registry.AddUser(userID)
		b.sendMessage(chatID, welcomeMessage+"\n\n"+
			"You have been set as the first administrator of the bot.")
		return
	}

	b.registry.AddUser(userID)
	b.sendMessage(chatID, welcomeMessage)
}

// handleStatus отвечает текущим статусом.
func (b *Bot) handleStatus(chatID, userID int64) {
	b.sendMessage(chatID, b.statusService.GetStatusInfo("status"))
	log.WithField("user_id", userID).Info("Статус отправлен")
}

// handleMyID присылает пользователю его ID.
func (b *Bot) handleMyID(chatID, userID int64, firstName string) {
	b.sendMessage(chatID, fmt.Sprintf(
		"Your user ID: %d\nName: %s\n\n"+
			"You can share this ID with an admin if you need admin privileges.",
		userID, firstName,
	))
}

// handleNotifyAll — ручной запуск ежемесячной рассылки (только админ).
func (b *Bot) handleNotifyAll(chatID, userID int64) {
	if !b.requireAdmin(chatID, userID, "notify_all") {
		return
	}

	log.WithField("user_id", userID).Info("Ручная рассылка запущена админом")
	b.dispatcher.DispatchMonthly(b.SendMessageToUser)
	b.sendMessage(chatID, "Notifications sent to all users.")
}

// handleListUsers выводит список зарегистрированных пользователей (только админ).
func (b *Bot) handleListUsers(chatID, userID int64) {
	if !b.requireAdmin(chatID, userID, "list_users") {
		return
	}

	users := b.registry.AllUsers()
	if len(users) == 0 {
		b.sendMessage(chatID, "No registered users yet.")
		return
	}

	b.sendMessage(chatID, formatIDList("List of users:", users))
}

// handleListAdmins выводит список админов (только админ).
func (b *Bot) handleListAdmins(chatID, userID int64) {
	if !b.requireAdmin(chatID, userID, "list_admins") {
		return
	}

	admins := b.registry.AllAdmins()
	if len(admins) == 0 {
		b.sendMessage(chatID, "The admin list is empty.")
		return
	}

	b.sendMessage(chatID, formatIDList("List of administrators:", admins))
}

// handleAddAdmin назначает нового админа (только админ).
// Цель должна быть уже зарегистрирована через /start.
func (b *Bot) handleAddAdmin(chatID, userID int64, adminName, args string) {
	if !b.requireAdmin(chatID, userID, "add_admin") {
		return
	}

	newAdminID, errReply := parseIDArg(args,
		"Please provide a user ID to add as admin.\nUsage: /add_admin USER_ID")
	if errReply != "" {
		b.sendMessage(chatID, errReply)
		return
	}

	if !b.registry.IsUser(newAdminID) {
		b.sendMessage(chatID, fmt.Sprintf(
			"User ID %d is not registered with the bot. The user must use /start command first.",
			newAdminID,
		))
		return
	}

	if b.registry.IsAdmin(newAdminID) {
		b.sendMessage(chatID, fmt.Sprintf("User ID %d is already an admin.", newAdminID))
		return
	}

	if !b.registry.AddAdmin(newAdminID) {
		b.sendMessage(chatID, fmt.Sprintf("Failed to add user ID %d as admin.", newAdminID))
		return
	}

	b.sendMessage(chatID, fmt.Sprintf("User ID %d has been added as an admin.", newAdminID))
	log.WithFields(log.Fields{"new_admin": newAdminID, "by": userID}).Info("Назначен новый админ")

	// Уведомляем нового админа (best-effort).
	notice := fmt.Sprintf(
		"🔔 You have been given administrator privileges by %s (ID: %d).\n\n"+
			"As an admin, you can now use these additional commands:\n%s\n\n"+
			"If you don't want to be an admin, you can decline these privileges "+
			"with the /decline_admin command.",
		adminName, userID, "• "+strings.Join(adminCommands, "\n• "),
	)
	if err := b.SendMessageToUser(newAdminID, notice); err != nil {
		log.WithError(err).WithField("user_id", newAdminID).Error("Не удалось уведомить нового админа")
	}
}

// handleRemoveAdmin снимает админские права с другого админа (только админ).
// Себя снять нельзя — для этого есть /decline_admin.
func (b *Bot) handleRemoveAdmin(chatID, userID int64, adminName, args string) {
	if !b.requireAdmin(chatID, userID, "remove_admin") {
		return
	}

	removeID, errReply := parseIDArg(args,
		"Please provide a user ID to remove from admins.\nUsage: /remove_admin USER_ID")
	if errReply != "" {
		b.sendMessage(chatID, errReply)
		return
	}

	if removeID == userID {
		b.sendMessage(chatID, "You cannot remove yourself from admins. Use /decline_admin instead.")
		return
	}

	if !b.registry.IsAdmin(removeID) {
		b.sendMessage(chatID, fmt.Sprintf("User ID %d is not an admin.", removeID))
		return
	}

	if !b.registry.RemoveAdmin(removeID) {
		// Цель — админ, но удаление отклонено: это последний админ.
		b.sendMessage(chatID, fmt.Sprintf(
			"Failed to remove user ID %d from admins. Cannot remove the last admin.",
			removeID,
		))
		return
	}

	b.sendMessage(chatID, fmt.Sprintf("User ID %d has been removed from admins.", removeID))
	log.WithFields(log.Fields{"removed": removeID, "by": userID}).Info("Админ удалён")

	// Уведомляем снятого админа (best-effort).
	notice := fmt.Sprintf("Your administrator privileges have been revoked by %s (ID: %d).", adminName, userID)
	if err := b.SendMessageToUser(removeID, notice); err != nil {
		log.WithError(err).WithField("user_id", removeID).Error("Не удалось уведомить снятого админа")
	}
}

// handleDeclineAdmin — самостоятельный отказ от админских прав.
// Последний админ отказаться не может.
func (b *Bot) handleDeclineAdmin(chatID, userID int64) {
	if !b.registry.IsAdmin(userID) {
		b.sendMessage(chatID, "You are not an admin.")
		return
	}

	if !b.registry.RemoveAdmin(userID) {
		b.sendMessage(chatID,
			"You are the last administrator and cannot decline your privileges. "+
				"Make someone else an admin first.")
		return
	}

	b.sendMessage(chatID, "You have successfully declined your administrator privileges.")
	log.WithField("user_id", userID).Info("Админ отказался от прав")
}

// requireAdmin проверяет права и отвечает отказом неадмину.
// Попытка логируется с ID для аудита.
func (b *Bot) requireAdmin(chatID, userID int64, cmd string) bool {
	if b.registry.IsAdmin(userID) {
		return true
	}

	b.sendMessage(chatID, permissionDenied)
	log.WithFields(log.Fields{
		"user_id": userID,
		"cmd":     cmd,
	}).Warn("Попытка выполнить админ-команду без прав")
	return false
}

// parseIDArg разбирает единственный числовой аргумент команды.
// При ошибке возвращает текст ответа пользователю: usage при
// отсутствующем/лишнем аргументе, отдельное сообщение при нечисловом ID.
func parseIDArg(args, usage string) (int64, string) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return 0, usage
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, "Invalid user ID. Please provide a numeric user ID."
	}
	return id, ""
}

// formatIDList печатает нумерованный список ID.
func formatIDList(header string, ids []int64) string {
	var sb strings.Builder
	sb.WriteString(header)
	for i, id := range ids {
		sb.WriteString(fmt.Sprintf("\n%d. %d", i+1, id))
	}
	return sb.String()
}

// компиляционная проверка: SendMessageToUser подходит как notify.SendFunc
var _ notify.SendFunc = (*Bot)(nil).SendMessageToUser
