package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// registerEmailSteps registers steps around the outgoing email queue.
func registerEmailSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the email worker runs$`, theEmailWorkerRuns)
	ctx.Step(`^the email provider rejects emails with status (\d+) and message "([^"]*)"$`, theEmailProviderRejectsEmails)
	ctx.Step(`^the email provider accepts emails again$`, theEmailProviderAcceptsEmailsAgain)
	ctx.Step(`^the email provider should have received (\d+) emails?$`, theEmailProviderShouldHaveReceived)
	ctx.Step(`^email (\d+) should be sent to "([^"]*)" with subject containing "([^"]*)"$`, emailShouldBeSentTo)
}

func theEmailWorkerRuns(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.injector.EmailWorker.ProcessNow(ctx)
	return nil
}

func theEmailProviderRejectsEmails(ctx context.Context, status int, message string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.resend.SetResponse(-1, "POST", resendEmailsPath, status, map[string]any{
		"statusCode": status,
		"name":       "error",
		"message":    message,
	})
	return nil
}

func theEmailProviderAcceptsEmailsAgain(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.resend.SetResponse(-1, "POST", resendEmailsPath, 200, map[string]any{"id": "re_integration"})
	return nil
}

func theEmailProviderShouldHaveReceived(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if got := tc.resend.RequestCount("POST", resendEmailsPath); got != count {
		return fmt.Errorf("expected %d emails, provider received %d", count, got)
	}
	return nil
}

// emailShouldBeSentTo checks the n-th email, counting from 1.
func emailShouldBeSentTo(ctx context.Context, n int, to, subject string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	body := tc.resend.GetRequestBody("POST", resendEmailsPath, n-1)
	if body == nil {
		return fmt.Errorf("email %d was not sent", n)
	}

	recipients, _ := body["to"].([]any)
	if len(recipients) != 1 || recipients[0] != to {
		return fmt.Errorf("email %d sent to %v, expected %s", n, body["to"], to)
	}
	if got, _ := body["subject"].(string); !strings.Contains(got, subject) {
		return fmt.Errorf("email %d subject %q does not contain %q", n, got, subject)
	}
	headers := tc.resend.GetRequestHeaders("POST", resendEmailsPath, n-1)
	if got := headers["Authorization"]; got != "Bearer "+testResendAPIKey {
		return fmt.Errorf("email %d sent with authorization %q", n, got)
	}
	return nil
}
