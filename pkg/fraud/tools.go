package fraud

import (
	"context"
	"fmt"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
)

type loadCaseInput struct {
	UserName string `json:"user_name" desc:"Customer's full name"`
}

type verifyInput struct {
	UserAnswer string `json:"user_answer" desc:"Customer's answer to the security question"`
}

type updateStatusInput struct {
	Status  string `json:"status" enum:"confirmed_safe,confirmed_fraud,verification_failed" desc:"Final case status"`
	Outcome string `json:"outcome" desc:"Description of what happened on the call"`
}

// Tools returns the fraud agent's tool set over the service.
func Tools(svc *Service) *agent.ToolSet {
	ts := agent.NewToolSet()

	agent.AddFunc(ts, "load_fraud_case",
		"Load the pending fraud case for a customer. Call after the customer confirms their name.",
		func(ctx context.Context, in loadCaseInput) (string, error) {
			c, err := svc.LoadCase(in.UserName)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Case %s loaded. Security question: %s", c.ID, c.SecurityQuestion), nil
		})

	agent.AddFunc(ts, "verify_customer",
		"Verify the customer's identity with their security question answer.",
		func(ctx context.Context, in verifyInput) (string, error) {
			ok, err := svc.Verify(in.UserAnswer)
			if err != nil {
				return "", err
			}
			if !ok {
				return "failed", nil
			}
			return "Verified! Transaction details: " + svc.TransactionDetails(), nil
		})

	agent.AddFunc(ts, "update_case_status",
		"Record the final case status once verification is complete.",
		func(ctx context.Context, in updateStatusInput) (string, error) {
			if err := svc.UpdateStatus(in.Status, in.Outcome); err != nil {
				return "", err
			}
			return fmt.Sprintf("Case updated to %s.", in.Status), nil
		})

	return ts
}

// Agent builds the fraud verification agent definition.
func Agent(svc *Service) *agent.Agent {
	return &agent.Agent{
		Name: "fraud",
		Instructions: `You are a fraud detection representative for HDFC Bank.

YOUR ROLE:
- You are calling customers about suspicious transactions that were flagged
- Be professional, calm, and reassuring
- NEVER ask for full card numbers, PINs, or passwords

CALL FLOW (FOLLOW EXACTLY):
1. Greet: "Hello, this is the fraud prevention department from HDFC Bank."
2. Ask for the customer's name to look up flagged activity
3. Use load_fraud_case with their name
4. If no case is found, apologize and end the call
5. If a case is found, ask the security question before continuing
6. Use verify_customer with their answer
7. If verification fails, tell them to call the number on their card and
   use update_case_status with verification_failed, then end the call
8. If verification passes, read the transaction details clearly and ask
   "Did you make this purchase?"
9. YES means update_case_status with confirmed_safe; NO means
   update_case_status with confirmed_fraud and tell them the card is blocked
10. Thank them and end the call

IMPORTANT:
- Use tools immediately when needed
- Be concise and clear
- No bullet points or formatting in speech`,
		Tools: Tools(svc),
	}
}
