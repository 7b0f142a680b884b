package utils

import "fmt"

// HTML Wrapper shared by all transactional emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0B3D2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #0B3D2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #E94560; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #E94560; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SHIKHON</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Shikhon. All rights reserved.<br>
				You are receiving this email because of your activity on shikhon.com.bd.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Workshop payment confirmation
func SendWorkshopConfirmationEmail(email, name, workshopTitle string, amount float64) {
	subject := "Enrollment Confirmed: " + workshopTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment of <strong>BDT %.2f</strong> has been received.</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Check your dashboard for the schedule and joining link.
		</div>
	`, name, amount, workshopTitle)

	go defaultMailer.Send([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// 2. Course payment confirmation
func SendCourseConfirmationEmail(email, name, courseTitle string, amount float64) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment of <strong>BDT %.2f</strong> has been received and your enrollment in <strong>%s</strong> is confirmed.</p>
		<p>All course content is now unlocked on your dashboard.</p>
	`, name, amount, courseTitle)

	go defaultMailer.Send([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// 3. Job application confirmation
func SendJobApplicationEmail(email, name, jobTitle string) {
	subject := "Application Received: " + jobTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your application for the position of <strong>%s</strong>.</p>
		<p>Our team will review it and contact you if you are shortlisted.</p>
	`, name, jobTitle)

	go defaultMailer.Send([]string{email}, subject, getEmailTemplate("Application Received", body))
}

// 4. Password reset
func SendPasswordResetEmail(email, name, resetLink string) {
	subject := "Reset Your Password"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received a request to reset your password. Click the button below to choose a new one. The link expires in 1 hour.</p>
		<a href="%s" class="btn">Reset Password</a>
		<p style="margin-top: 20px;">If you did not request this, you can safely ignore this email.</p>
	`, name, resetLink)

	go defaultMailer.Send([]string{email}, subject, getEmailTemplate("Password Reset", body))
}

// 5. Campus ambassador confirmation
func SendAmbassadorEmail(email, name string) {
	subject := "Campus Ambassador Application Received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for applying to the <strong>Shikhon Campus Ambassador</strong> program.</p>
		<p>We review applications in batches and will reach out with the next steps.</p>
	`, name)

	go defaultMailer.Send([]string{email}, subject, getEmailTemplate("Application Received", body))
}

// 6. Free workshop enrollment (no payment leg)
func SendFreeEnrollmentEmail(email, name, workshopTitle string) {
	subject := "Enrollment Confirmed: " + workshopTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are enrolled in <strong>%s</strong>. This workshop is free of charge.</p>
		<p>See your dashboard for the schedule and joining link.</p>
	`, name, workshopTitle)

	go defaultMailer.Send([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}
