package dialog

import (
	"fmt"

	"github.com/Bhuwinrag/ai-loan-bot/internal/money"
)

// The lender name used across the scripted replies and the widget.
const brandName = "Apex Capital"

const (
	msgAskName     = "Hello! Welcome to " + brandName + ". May I know your name?"
	msgInvalidName = "Please enter a valid name."

	msgDeclineClose = "No problem at all! We're here if you change your mind. Have a great day!"

	msgAskAmountAndTenure = "That's great! To find the best offer for you, how much money do you need, and for how many months? (e.g., '50000 for 12 months')"

	msgNegotiation = "That's a great question. The interest rate is determined by our underwriting system based on your full credit profile after you apply. " +
		"I can assure you that we will provide the best possible rate we can. " +
		"To see your final rate, we just need to confirm the amount you need. How much were you thinking of?"

	msgRepromptAmountTenure = "I'm sorry, I didn't quite catch that. Could you please tell me the loan amount and the tenure in months? For example: 'I need 100000 for 24 months'."

	msgRepromptTenure = "I didn't catch the duration. Could you please tell me the number of months? (e.g., '12' or '24')"

	msgRepromptPhone = "I'm sorry, that phone number doesn't look right. Please enter a valid 10-digit mobile number."

	msgUploadReminder = "Please use the upload button to submit your salary slip. If you're having trouble, please let me know."

	msgAlreadyProcessed = "I have already processed your request. Is there anything else I can help you with today?"

	msgSlipNotNeededYet = "We don't need your salary slip just yet. Let's finish your application details first."

	letterGeneratedSuffix = " I have generated your sanction letter. You can download it here: "
	letterFailedSuffix    = " I was unable to generate your sanction letter at this time, but a copy will be emailed to you."
)

func msgSalesGreeting(firstName string, limit int) string {
	return fmt.Sprintf(
		"Hi %s! I'm your digital sales assistant from %s. "+
			"Great news! Because you're a valued customer, I see you have a pre-approved personal loan offer of up to %s! "+
			"This could be perfect for a home renovation, a vacation, or anything else you need. "+
			"Are you interested in discussing this offer today?",
		firstName, brandName, money.Rupees(limit),
	)
}

func msgCampaignOffer(name string, limit int) string {
	return fmt.Sprintf(
		"Welcome back, %s! We have a special pre-approved offer for you.\n"+
			"You are eligible for a personal loan of up to %s!\n"+
			"Are you interested in proceeding with this offer?",
		name, money.Rupees(limit),
	)
}

func msgConfirmLoan(amount, tenure int) string {
	return fmt.Sprintf(
		"Got it. You're looking for %s for %d months. Before we proceed, I need to verify your identity. Can you please confirm your 10-digit mobile number?",
		money.Rupees(amount), tenure,
	)
}

func msgAskTenure(amount int) string {
	return fmt.Sprintf("Got it, %s. And for how many months would you like to take this loan?", money.Rupees(amount))
}

func msgAskTenureShort(amount int) string {
	return fmt.Sprintf("Got it, %s. And for how many months?", money.Rupees(amount))
}

func msgTenureConfirm(amount, tenure int) string {
	return fmt.Sprintf(
		"Understood. %s for %d months. To proceed, I need to verify your identity. Can you please confirm your 10-digit mobile number?",
		money.Rupees(amount), tenure,
	)
}

func msgApproved(firstName string, amount int) string {
	return fmt.Sprintf("Congratulations, %s! Your loan for %s has been approved!", firstName, money.Rupees(amount))
}

func msgNeedsSalarySlip(amount int) string {
	return fmt.Sprintf(
		"You're almost there! Your loan of %s is just above your pre-approved limit. "+
			"To complete the approval, please upload your latest salary slip using the upload button that just appeared.",
		money.Rupees(amount),
	)
}

func msgRejected(firstName, reason string) string {
	return fmt.Sprintf("I'm sorry, %s. After a review, we are unable to approve your loan at this time. Reason: %s", firstName, reason)
}
