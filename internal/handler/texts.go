package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/config"
	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/set-night/cryptoshop/internal/telegram"
	"github.com/shopspring/decimal"
)

// Callback data.
const (
	cbBuyAccounts      = "buy_accounts"
	cbBackToBuyMenu    = "back_to_buy_menu"
	cbBackToMainMenu   = "back_to_main_menu"
	cbSelectPack       = "select_pack_"
	cbSelectCustom     = "select_custom_quantity"
	cbPayCryptoBot     = "pay_cryptobot"
	cbCheckPayment     = "check_payment"
	cbRestart          = "restart"
	cbSupport          = "support"
	cbFAQ              = "faq"
	cbReferralSystem   = "referral_system"
	cbEarnMoney        = "earn_money"
	referralLinkPrefix = "ref_"
)

func mainMenuText() string {
	return "<b>Добро пожаловать в Stripe Seller Bot ✨</b>\n\n" +
		"Давно хотел приобрести качественные Stripe аккаунты с " +
		"балансом? Тебе определенно к нам! ⭐\n\n" +
		"Ниже располагается меню, ознакомляйся 🎲"
}

func mainMenuKeyboard() *models.InlineKeyboardMarkup {
	return telegram.InlineKeyboard(
		telegram.ButtonRow(telegram.InlineButton("Купить аккаунты 🛒", cbBuyAccounts)),
		telegram.ButtonRow(
			telegram.InlineButton("Поддержка 🌐", cbSupport),
			telegram.InlineButton("FAQ ↗️", cbFAQ),
		),
		telegram.ButtonRow(telegram.InlineButton("Реферальная система 👥", cbReferralSystem)),
		telegram.ButtonRow(telegram.InlineButton("Заработать 💰", cbEarnMoney)),
	)
}

func backToMainKeyboard() *models.InlineKeyboardMarkup {
	return telegram.SingleColumn(telegram.InlineButton("◀️ Назад", cbBackToMainMenu))
}

func buyMenuText() string {
	return "Шаг 1 из 3... Выбор количества для покупки\n\n" +
		"Решил купить аккаунты? Ты на верном пути! ✈️\n" +
		"Наши преимущества перед другими сервисами:\n\n" +
		"- Мы гарантируем возврат в случае невалидности 🔮\n" +
		"- Готовы предоставить платежные системы высшего уровня 💾\n" +
		"- Удобные способы оплаты 📥\n" +
		"- Быстрая техподдержка, готовая вам помочь в любой момент 📞\n\n" +
		"Кхм, перейдем к количеству\n" +
		"Вот прайс-лист на аккаунты💎\n\n" +
		"От 1 до 19 Штук - 10$💰\n" +
		"От 20 до 49 Штук - 9$💰\n" +
		"От 50 до 100 Штук - 8$💰\n\n" +
		"Нажми на кнопку свое кол-во чтобы приобрести аккаунты либо выбери из готовых паков"
}

func buyMenuKeyboard() *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(config.Packs)+2)
	for _, p := range config.Packs {
		label := fmt.Sprintf("%s (%d %s)", p.Name, p.Quantity, accountsWord(p.Quantity))
		buttons = append(buttons, telegram.InlineButton(label, fmt.Sprintf("%s%d", cbSelectPack, p.Quantity)))
	}
	buttons = append(buttons,
		telegram.InlineButton("Свое количество", cbSelectCustom),
		telegram.InlineButton("Вернуться назад", cbBackToMainMenu),
	)
	return telegram.SingleColumn(buttons...)
}

// accountsWord picks the Russian plural form of "аккаунт" for n.
func accountsWord(n int) string {
	if n%100 >= 11 && n%100 <= 14 {
		return "аккаунтов"
	}
	switch n % 10 {
	case 1:
		return "аккаунт"
	case 2, 3, 4:
		return "аккаунта"
	default:
		return "аккаунтов"
	}
}

func customQuantityText() string {
	return fmt.Sprintf("✏️ Введи количество аккаунтов числом от %d до %d.\n\n"+
		"Цена за штуку зависит от количества, смотри прайс-лист выше.",
		config.MinQuantity, config.MaxQuantity)
}

func invalidQuantityText() string {
	return fmt.Sprintf("❌ Нужно целое число от %d до %d. Попробуй ещё раз.", config.MinQuantity, config.MaxQuantity)
}

func backToBuyKeyboard() *models.InlineKeyboardMarkup {
	return telegram.SingleColumn(telegram.InlineButton("◀️ Вернуться назад", cbBackToBuyMenu))
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func orderSummaryText(order *domain.Order) string {
	return "Шаг 2 из 3... Оплата товара\n\n" +
		"Ты почти у цели вот твой заказ, все ли верно? ✅\n" +
		"🔹 Товар: " + config.ProductName + "\n" +
		fmt.Sprintf("🔹 Количество: %d штук\n", order.Quantity) +
		fmt.Sprintf("🔹 Цена за штуку: %s$\n", money(order.UnitPrice)) +
		fmt.Sprintf("🔹 Сумма заказа: %s$\n\n", money(order.TotalPrice)) +
		"Почти все готово, осталось оплатить заказ, выбери ниже способ пополнения ✔️"
}

func orderSummaryKeyboard() *models.InlineKeyboardMarkup {
	return telegram.SingleColumn(
		telegram.InlineButton("💎 CryptoBot", cbPayCryptoBot),
		telegram.InlineButton("Вернуться назад", cbBackToBuyMenu),
	)
}

func invoiceText(checkout *domain.Checkout, asset string) string {
	return "Шаг 2 из 3... Оплата товара\n\n" +
		"Решил использовать CryptoBot? Нет проблем, перепроверь информацию ниже ⬇️\n" +
		"🔹 ID заказа: " + telegram.Code(checkout.Invoice.OrderID) + "\n" +
		"🔹 Товар: " + config.ProductName + "\n" +
		fmt.Sprintf("🔹 Количество: %d штук\n", checkout.Order.Quantity) +
		fmt.Sprintf("🔹 Сумма заказа: %s %s\n\n", money(checkout.Order.TotalPrice), telegram.EscapeHTML(asset)) +
		"Все верно? Внизу тебя ждет счет, после его оплаты жми кнопку проверить оплату ⏭️\n\n" +
		fmt.Sprintf("⏰ <b>Важно!</b> Счет действителен %d минут!", int(config.InvoiceTTL.Minutes()))
}

func invoiceKeyboard(payURL string) *models.InlineKeyboardMarkup {
	return telegram.SingleColumn(
		telegram.URLButton("💳 Оплатить счет", payURL),
		telegram.InlineButton("🔄 Проверить оплату", cbCheckPayment),
		telegram.InlineButton("◀️ Вернуться назад", cbBackToBuyMenu),
	)
}

func invoiceErrorText(err error) string {
	reason := err.Error()
	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) {
		reason = gwErr.Reason
	}
	return "❌ Произошла ошибка при создании счета.\n" +
		"Ошибка: " + telegram.EscapeHTML(reason) + "\n" +
		"Попробуйте снова или обратитесь в поддержку."
}

func invoiceErrorKeyboard() *models.InlineKeyboardMarkup {
	return telegram.SingleColumn(
		telegram.InlineButton("🔄 Попробовать снова", cbPayCryptoBot),
		telegram.InlineButton("◀️ Вернуться назад", cbBackToBuyMenu),
	)
}

func noOrderText() string {
	return "Произошла ошибка, пожалуйста, начните заново."
}

func restartKeyboard() *models.InlineKeyboardMarkup {
	return telegram.SingleColumn(telegram.InlineButton("🔄 Начать заново", cbRestart))
}

// outcomeText renders a payment check or expiry result.
func outcomeText(o *domain.Outcome) string {
	switch o.Kind {
	case domain.OutcomePaid:
		return successText(o)
	case domain.OutcomePending:
		return "⏳ Оплата не сделана, попробуйте ещё раз!"
	case domain.OutcomeExpired:
		return fmt.Sprintf("❌ Оплата не была совершена в течение %d минут.\n"+
			"Пожалуйста, начните процесс покупки заново.", int(config.InvoiceTTL.Minutes()))
	case domain.OutcomeCancelled:
		return "❌ Платеж был отменен!"
	case domain.OutcomeNotFound:
		return "❌ Платеж не найден."
	case domain.OutcomeNoPayment:
		return "❌ Данные о платеже не найдены. Начните процесс оплаты заново."
	default:
		var transportErr *domain.TransportError
		if errors.As(o.Err, &transportErr) {
			return "❌ Произошла внутренняя ошибка. Попробуйте позже."
		}
		return "❌ Ошибка при проверке платежа."
	}
}

func outcomeKeyboard(o *domain.Outcome) *models.InlineKeyboardMarkup {
	switch o.Kind {
	case domain.OutcomePending:
		return nil
	case domain.OutcomeNoPayment, domain.OutcomeCancelled, domain.OutcomeNotFound, domain.OutcomeError:
		return telegram.SingleColumn(
			telegram.InlineButton("🔄 Начать заново", cbRestart),
			telegram.InlineButton("◀️ Назад", cbBackToMainMenu),
		)
	default:
		return backToMainKeyboard()
	}
}

func successText(o *domain.Outcome) string {
	var sb strings.Builder
	sb.WriteString("✅ Оплата прошла успешно!\n")
	sb.WriteString(fmt.Sprintf("📦 Ваш заказ #%s:\n", telegram.EscapeHTML(o.OrderID)))
	sb.WriteString(fmt.Sprintf("🔢 Количество аккаунтов: %d шт.\n", o.Order.Quantity))
	sb.WriteString(fmt.Sprintf("💰 Сумма: %s$\n\n", money(o.Order.TotalPrice)))
	sb.WriteString("Ваши аккаунты:\n")
	for i, c := range o.Credentials {
		sb.WriteString(fmt.Sprintf("Аккаунт %d: %s: %s\n", i+1, telegram.Code(c.Login), telegram.Code(c.Password)))
	}
	sb.WriteString("\n❤️ Спасибо за покупку, приятель!")
	return sb.String()
}

func supportText() string {
	return "🆘 <b>Техническая поддержка</b>\n\n" +
		"Есть вопросы? Мы всегда готовы помочь!\n\n" +
		"📧 Способы связи:\n" +
		"• Telegram: " + config.SupportTelegram + "\n" +
		"• Email: " + config.SupportEmail + "\n\n" +
		"⏰ Время работы: 24/7\n" +
		"⚡ Среднее время ответа: 5-15 минут\n\n" +
		"🔸 Часто задаваемые вопросы найдете в разделе FAQ"
}

func faqText() string {
	return "❓ <b>Часто задаваемые вопросы</b>\n\n" +
		"<b>Q:</b> Как долго действительны аккаунты?\n" +
		"<b>A:</b> Все аккаунты проверены и готовы к работе длительное время.\n\n" +
		"<b>Q:</b> Есть ли гарантия возврата?\n" +
		"<b>A:</b> Да, мы гарантируем возврат в случае невалидности.\n\n" +
		"<b>Q:</b> Какие способы оплаты доступны?\n" +
		"<b>A:</b> Мы принимаем оплату через CryptoBot.\n\n" +
		"<b>Q:</b> Сколько времени занимает доставка?\n" +
		"<b>A:</b> Мгновенно после оплаты.\n\n" +
		fmt.Sprintf("<b>Q:</b> Можно ли купить больше %d аккаунтов?\n", config.MaxQuantity) +
		"<b>A:</b> Да, обратитесь в поддержку для индивидуального предложения."
}

func earnText() string {
	return "💰 <b>Способы заработка</b>\n\n" +
		"1️⃣ <b>Реферальная программа</b>\n" +
		"• Приглашай друзей и получай 5% с каждой покупки\n" +
		"• Пассивный доход без ограничений\n\n" +
		"2️⃣ <b>Партнерская программа</b>\n" +
		"• Для активных пользователей\n" +
		"• Индивидуальные условия\n" +
		"• Обращайтесь в поддержку\n\n" +
		"3️⃣ <b>Оптовые закупки</b>\n" +
		"• Покупай оптом - продавай в розницу\n" +
		"• Специальные цены от 100+ аккаунтов\n\n" +
		"💡 <b>Начни зарабатывать уже сегодня!</b>"
}

func earnKeyboard() *models.InlineKeyboardMarkup {
	return telegram.SingleColumn(
		telegram.InlineButton("👥 Реферальная система", cbReferralSystem),
		telegram.InlineButton("◀️ Назад", cbBackToMainMenu),
	)
}

func referralLink(botUsername string, userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%s%d", botUsername, referralLinkPrefix, userID)
}

func referralText(link string) string {
	return "💰 Зарабатывай с нашей реферальной программой!\n" +
		"🔗 Ваша персональная ссылка:\n" +
		"👉 " + telegram.Code(link) + "\n\n" +
		"🎯 Как это работает?\n" +
		"✔ Приглашаешь друзей – делись своей ссылкой.\n" +
		"✔ Они покупают – ты получаешь 5% от их заказа.\n" +
		"✔ Чем больше рефералов – тем выше пассивный доход!\n\n" +
		"🚀 Начни привлекать клиентов прямо сейчас!\n\n" +
		"<i>P.S. 10 друзей = гарантированный профит. А 50? Считай сам! 😉</i>"
}
