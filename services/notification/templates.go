package notification

import (
	"fmt"
	"strings"
	"time"

	"onehour/models"
)

func emailTemplate(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background: #0a0a0a; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 0 auto; background: #111; border-radius: 12px; overflow: hidden;">
    <div style="background: linear-gradient(135deg, #c62828, #b71c1c); padding: 30px; text-align: center;">
      <h1 style="color: #fff; margin: 0; font-size: 24px; letter-spacing: 2px;">ONEHOUR CHALLENGE</h1>
      <p style="color: rgba(255,255,255,0.8); margin: 5px 0 0; font-size: 12px; letter-spacing: 3px;">THE HOUR THAT CHANGES EVERYTHING</p>
    </div>
    <div style="padding: 30px; color: #ddd;">
      <h2 style="color: #e53935; margin-top: 0;">%s</h2>
      %s
    </div>
    <div style="padding: 20px 30px; background: #0a0a0a; text-align: center; color: #555; font-size: 12px;">
      &copy; %d OneHour Challenge. All rights reserved.
    </div>
  </div>
</body>
</html>`, title, content, time.Now().Year())
}

func infoRow(label, value string) string {
	return fmt.Sprintf(`<div style="padding: 10px 0; border-bottom: 1px solid #222;"><span style="color: #888; font-size: 14px;">%s</span> <span style="color: #fff; font-weight: 600; font-size: 14px; float: right;">%s</span></div>`, label, value)
}

func rupees(paise int64) string {
	return fmt.Sprintf("₹%d", paise/100)
}

func bookingCreatedBody(b models.Booking) string {
	content := "<p>A new booking has been received:</p>" +
		infoRow("Name", b.Name) +
		infoRow("Email", b.Email) +
		infoRow("Mobile", b.Mobile) +
		infoRow("Plan", string(b.PlanType)) +
		infoRow("Duration", string(b.Duration)) +
		infoRow("Days", strings.Join(b.PreferredDays, ", ")) +
		infoRow("Time Slot", b.PreferredTimeSlot)
	return emailTemplate("New Booking Received", content)
}

func paymentCompletedBody(p models.Payment) string {
	content := "<p>Payment has been confirmed:</p>" +
		infoRow("Payment ID", p.TransactionRef) +
		infoRow("Amount", rupees(p.Amount)) +
		infoRow("Plan", string(p.PlanType)) +
		infoRow("Duration", string(p.Duration)) +
		infoRow("Order ID", p.OrderRef)
	return emailTemplate("Payment Confirmed", content)
}

func manualPaymentAdminBody(p models.ManualPaymentPayload) string {
	content := "<p>A UPI payment proof has been submitted and needs reconciliation:</p>" +
		infoRow("Name", p.Name) +
		infoRow("Email", p.Email) +
		infoRow("Mobile", p.Mobile) +
		infoRow("Plan", string(p.PlanType)) +
		infoRow("Duration", string(p.Duration)) +
		infoRow("Amount", rupees(p.Amount)) +
		infoRow("UTR", p.UTR)
	return emailTemplate("UPI Payment Submitted", content)
}

func manualPaymentCustomerBody(p models.ManualPaymentPayload) string {
	content := fmt.Sprintf("<p>Hi %s, we have recorded your payment. Your membership is being activated.</p>", p.Name) +
		infoRow("Plan", string(p.PlanType)) +
		infoRow("Duration", string(p.Duration)) +
		infoRow("Amount", rupees(p.Amount)) +
		infoRow("UTR", p.UTR)
	return emailTemplate("Payment Received", content)
}
