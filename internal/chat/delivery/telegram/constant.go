package telegram

const (
	commandStart = "/start"
	commandHelp  = "/help"
	commandClear = "/clear"

	sessionPrefix = "telegram_"

	welcomeMessage = "👋 Welcome to the *Channel Finance Assistant*!\n\n" +
		"Ask me anything about loans and banking services, for example:\n" +
		"_\"What documents do I need for a business loan?\"_\n\n" +
		"Send /help for usage or /clear to start over."
	helpMessage = "*How to use:*\n\n" +
		"• Ask about loans, interest rates, EMI, collateral, KYC or GST documents.\n" +
		"• I remember the recent conversation of this chat.\n" +
		"• /clear forgets the conversation."
	clearedMessage = "🧹 Chat history cleared."
	failedMessage  = "Something went wrong while processing your message. Please try again."
)
