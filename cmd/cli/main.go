package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "moneyflow-cli",
		Short: "moneyflow CLI tool",
		Long:  `A command line interface for interacting with the moneyflow API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the moneyflow API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		customerCmd(),
		accountCmd(),
		transferCmd(),
		settleCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func customerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Customer operations",
	}

	var dataHash string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/customers", map[string]any{"data_hash": dataHash})
		},
	}
	create.Flags().StringVar(&dataHash, "data-hash", "", "Hash of the customer's personal data")

	block := &cobra.Command{
		Use:   "block [id]",
		Short: "Block a customer",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/customers/"+args[0]+"/block", nil)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get a customer",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/customers/" + args[0])
		},
	}

	cmd.AddCommand(create, block, getCmd)

	return cmd
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var (
		customerID int64
		currency   string
		amount     string
	)

	addSelector := func(c *cobra.Command) {
		c.Flags().Int64Var(&customerID, "customer", 0, "Customer id")
		c.Flags().StringVar(&currency, "currency", "RUR", "Account currency")
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Open an account",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/accounts", map[string]any{"customer_id": customerID, "currency": currency})
		},
	}
	addSelector(create)

	find := &cobra.Command{
		Use:   "find",
		Short: "Find an account",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/accounts/find", map[string]any{"customer_id": customerID, "currency": currency})
		},
	}
	addSelector(find)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an account",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/accounts/delete", map[string]any{"customer_id": customerID, "currency": currency})
		},
	}
	addSelector(deleteCmd)

	deposit := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit into an account",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/accounts/deposit", map[string]any{"customer_id": customerID, "currency": currency, "amount": amount})
		},
	}
	addSelector(deposit)
	deposit.Flags().StringVar(&amount, "amount", "0", "Amount to deposit")

	withdraw := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw from an account",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/accounts/withdraw", map[string]any{"customer_id": customerID, "currency": currency, "amount": amount})
		},
	}
	addSelector(withdraw)
	withdraw.Flags().StringVar(&amount, "amount", "0", "Amount to withdraw")

	cmd.AddCommand(create, find, deleteCmd, deposit, withdraw)

	return cmd
}

func transferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer operations",
	}

	var (
		senderID   int64
		receiverID int64
		currency   string
		amount     string
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Request a money transfer",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/transfers", map[string]any{
				"sender_id":   senderID,
				"receiver_id": receiverID,
				"currency":    currency,
				"amount":      amount,
			})
		},
	}
	create.Flags().Int64Var(&senderID, "sender", 0, "Sender customer id")
	create.Flags().Int64Var(&receiverID, "receiver", 0, "Receiver customer id")
	create.Flags().StringVar(&currency, "currency", "RUR", "Transfer currency")
	create.Flags().StringVar(&amount, "amount", "0", "Amount to transfer")

	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/transfers/" + args[0])
		},
	}

	cmd.AddCommand(create, getCmd)

	return cmd
}

func settleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle",
		Short: "Run one settlement sweep",
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/settlement/run", nil)
		},
	}
}

func post(path string, body any) {
	var data []byte
	if body != nil {
		var err error

		data, err = json.Marshal(body)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
	}

	doRequest(http.MethodPost, baseURL+path, data)
}

func get(path string) {
	doRequest(http.MethodGet, baseURL+path, nil)
}

// doRequest executes the request, retrying transport-level failures with
// exponential backoff. The request is rebuilt per attempt so the body can
// be re-sent. HTTP error statuses are not retried; the server already
// gave a definitive answer.
func doRequest(method, url string, data []byte) {
	client := &http.Client{Timeout: timeout}

	var (
		status int
		body   []byte
	)

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = timeout

	err := backoff.Retry(func() error {
		var payload io.Reader
		if data != nil {
			payload = bytes.NewReader(data)
		}

		req, err := http.NewRequest(method, url, payload)
		if err != nil {
			return backoff.Permanent(err)
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}

		return nil
	}, b)
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Status: %d\n%s\n", status, string(body))

	if status >= http.StatusBadRequest {
		os.Exit(1)
	}
}
