// Package main is the interactive Fintrack client: a shell over the
// typed API endpoints with a session restored from disk at startup.
package main

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/PreciousIfeaka/fintrack-fe/internal/client/api"
	"github.com/PreciousIfeaka/fintrack-fe/internal/client/credstore"
	"github.com/PreciousIfeaka/fintrack-fe/internal/client/gateway"
	"github.com/PreciousIfeaka/fintrack-fe/internal/client/session"
	"github.com/PreciousIfeaka/fintrack-fe/internal/config"
	"github.com/PreciousIfeaka/fintrack-fe/internal/logger"
	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

var (
	version   string
	buildDate string
)

// manualLogout suppresses the session-expired notice when the user
// signed out on purpose; the logout hook fires either way.
var manualLogout bool

// currentMonth is the default period for listings.
func currentMonth() string { return time.Now().Format("2006-01") }

// printErr renders a normalized API error for the shell: validation
// failures list their fields, everything else prints its message.
func printErr(err error) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Kind == gateway.KindValidation {
		fmt.Println("Validation failed:")
		for _, fe := range apiErr.FieldErrors {
			fmt.Printf("  %s: %s\n", fe.Field, fe.Message)
		}
		return
	}
	fmt.Println("Error:", err)
}

// repl runs the interactive shell loop, accepting commands to manage the
// session, budgets, income, and expenses.
func repl(client *api.Client, sess *session.Manager) {
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("fintrack> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println(`Available commands:
  register <name..> <email> <password>   create an account
  verify <email> <otp>                   verify with the emailed OTP
  login <email> <password>               sign in
  forgot <email>                         request a password reset OTP
  reset <otp> <password>                 set a new password
  whoami                                 show the signed-in user
  budgets [month]                        list budgets
  budget add <amount> <category>         create a budget
  budget edit <id> <amount>              change a budget's amount
  budget del <id>                        delete a budget
  incomes [month]                        list income
  income add <amount> <source>           record income
  income edit <id> <amount>              change an income amount
  income del <id>                        delete income
  expenses [month] [category]            list expenses
  expense add <amount> <category>        record an expense
  expense edit <id> <amount>             change an expense amount
  expense del <id>                       delete an expense
  profile name <name..>                  rename the account
  profile currency <code>                set the preferred currency
  passwd <password>                      change password
  avatar <path>                          upload a profile picture
  logout                                 sign out
  exit                                   leave the shell`)
		case "register":
			if len(args) < 4 {
				fmt.Println("Usage: register <name..> <email> <password>")
				continue
			}
			name := strings.Join(args[1:len(args)-2], " ")
			email, password := args[len(args)-2], args[len(args)-1]
			user, err := client.Register(ctx, name, email, password, password)
			if err != nil {
				printErr(err)
				continue
			}
			fmt.Printf("Registered %s — check your email for the OTP, then run: verify %s <otp>\n", user.Email, user.Email)
		case "verify":
			if len(args) < 3 {
				fmt.Println("Usage: verify <email> <otp>")
				continue
			}
			res, err := client.VerifyOTP(ctx, args[1], args[2])
			if err != nil {
				printErr(err)
				continue
			}
			fmt.Printf("Verified, signed in as %s\n", res.User.Email)
		case "login":
			if len(args) < 3 {
				fmt.Println("Usage: login <email> <password>")
				continue
			}
			res, err := client.Login(ctx, args[1], args[2])
			if err != nil {
				printErr(err)
				continue
			}
			fmt.Printf("Signed in as %s\n", res.User.Email)
		case "forgot":
			if len(args) < 2 {
				fmt.Println("Usage: forgot <email>")
				continue
			}
			if err := client.ForgotPassword(ctx, args[1]); err != nil {
				printErr(err)
				continue
			}
			fmt.Println("OTP sent if the account exists")
		case "reset":
			if len(args) < 3 {
				fmt.Println("Usage: reset <otp> <password>")
				continue
			}
			if err := client.ResetPassword(ctx, args[1], args[2], args[2]); err != nil {
				printErr(err)
				continue
			}
			fmt.Println("Password reset, log in with the new password")
		case "whoami":
			user := sess.User()
			if user == nil {
				fmt.Println("Not signed in")
				continue
			}
			fmt.Printf("%s <%s> currency=%s verified=%v\n", user.Name, user.Email, cmp.Or(string(user.Currency), "unset"), user.Verified)
		case "budgets":
			month := currentMonth()
			if len(args) > 1 {
				month = args[1]
			}
			page, err := client.GetBudgetsByMonth(ctx, 1, 10, month)
			if err != nil {
				printErr(err)
				continue
			}
			fmt.Printf("Budgets for %s (total %.2f, %d pages):\n", month, page.TotalBudget, page.Pages())
			for _, b := range page.Budgets {
				fmt.Printf("  %s  %-15s %10.2f  recurring=%v\n", b.ID, b.Category, b.Amount, b.IsRecurring)
			}
		case "budget":
			handleBudget(ctx, client, args[1:])
		case "incomes":
			month := currentMonth()
			if len(args) > 1 {
				month = args[1]
			}
			page, err := client.GetIncomesByMonth(ctx, 1, 10, month)
			if err != nil {
				printErr(err)
				continue
			}
			fmt.Printf("Income for %s (total %.2f, %d pages):\n", month, page.TotalIncome, page.Pages())
			for _, in := range page.Income {
				fmt.Printf("  %s  %-15s %10.2f\n", in.ID, in.Source, in.Amount)
			}
		case "income":
			handleIncome(ctx, client, args[1:])
		case "expenses":
			month := currentMonth()
			category := models.CategoryAll
			if len(args) > 1 {
				month = args[1]
			}
			if len(args) > 2 {
				category = models.ExpenseCategory(args[2])
			}
			page, err := client.GetExpensesByMonth(ctx, 1, 10, month, category)
			if err != nil {
				printErr(err)
				continue
			}
			fmt.Printf("Expenses for %s (total %.2f, %d pages):\n", month, page.TotalExpenses, page.Pages())
			for _, e := range page.Expenses {
				fmt.Printf("  %s  %-15s %10.2f\n", e.ID, e.Category, e.Amount)
			}
		case "expense":
			handleExpense(ctx, client, args[1:])
		case "profile":
			handleProfile(ctx, client, args[1:])
		case "passwd":
			if len(args) < 2 {
				fmt.Println("Usage: passwd <password>")
				continue
			}
			err := client.ChangePassword(ctx, models.ChangePasswordRequest{
				Password:        args[1],
				ConfirmPassword: args[1],
			})
			if err != nil {
				printErr(err)
				continue
			}
			fmt.Println("Password changed")
		case "avatar":
			if len(args) < 2 {
				fmt.Println("Usage: avatar <path>")
				continue
			}
			uploadAvatar(ctx, client, args[1])
		case "logout":
			manualLogout = true
			sess.Logout()
			manualLogout = false
			fmt.Println("Signed out")
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func handleBudget(ctx context.Context, client *api.Client, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: budget add|del ...")
		return
	}
	switch args[0] {
	case "add":
		if len(args) < 3 {
			fmt.Println("Usage: budget add <amount> <category>")
			return
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Println("invalid amount:", args[1])
			return
		}
		b, err := client.CreateBudget(ctx, models.CreateBudgetRequest{
			Amount:   amount,
			Category: models.ExpenseCategory(args[2]),
		})
		if err != nil {
			printErr(err)
			return
		}
		fmt.Println("Budget created:", b.ID)
	case "edit":
		if len(args) < 3 {
			fmt.Println("Usage: budget edit <id> <amount>")
			return
		}
		amount, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Println("invalid amount:", args[2])
			return
		}
		if _, err := client.UpdateBudget(ctx, args[1], models.UpdateBudgetRequest{Amount: &amount}); err != nil {
			printErr(err)
			return
		}
		fmt.Println("Budget updated")
	case "del":
		if len(args) < 2 {
			fmt.Println("Usage: budget del <id>")
			return
		}
		if err := client.DeleteBudget(ctx, args[1]); err != nil {
			printErr(err)
			return
		}
		fmt.Println("Budget deleted")
	default:
		fmt.Println("Usage: budget add|edit|del ...")
	}
}

func handleIncome(ctx context.Context, client *api.Client, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: income add|del ...")
		return
	}
	switch args[0] {
	case "add":
		if len(args) < 3 {
			fmt.Println("Usage: income add <amount> <source>")
			return
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Println("invalid amount:", args[1])
			return
		}
		in, err := client.CreateIncome(ctx, models.CreateIncomeRequest{
			Amount: amount,
			Source: strings.Join(args[2:], " "),
		})
		if err != nil {
			printErr(err)
			return
		}
		fmt.Println("Income recorded:", in.ID)
	case "edit":
		if len(args) < 3 {
			fmt.Println("Usage: income edit <id> <amount>")
			return
		}
		amount, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Println("invalid amount:", args[2])
			return
		}
		if _, err := client.UpdateIncome(ctx, args[1], models.UpdateIncomeRequest{Amount: &amount}); err != nil {
			printErr(err)
			return
		}
		fmt.Println("Income updated")
	case "del":
		if len(args) < 2 {
			fmt.Println("Usage: income del <id>")
			return
		}
		if err := client.DeleteIncome(ctx, args[1]); err != nil {
			printErr(err)
			return
		}
		fmt.Println("Income deleted")
	default:
		fmt.Println("Usage: income add|edit|del ...")
	}
}

func handleExpense(ctx context.Context, client *api.Client, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: expense add|del ...")
		return
	}
	switch args[0] {
	case "add":
		if len(args) < 3 {
			fmt.Println("Usage: expense add <amount> <category>")
			return
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Println("invalid amount:", args[1])
			return
		}
		e, err := client.CreateExpense(ctx, models.CreateExpenseRequest{
			Amount:   amount,
			Category: models.ExpenseCategory(args[2]),
		})
		if err != nil {
			printErr(err)
			return
		}
		fmt.Println("Expense recorded:", e.ID)
	case "edit":
		if len(args) < 3 {
			fmt.Println("Usage: expense edit <id> <amount>")
			return
		}
		amount, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Println("invalid amount:", args[2])
			return
		}
		if _, err := client.UpdateExpense(ctx, args[1], models.UpdateExpenseRequest{Amount: &amount}); err != nil {
			printErr(err)
			return
		}
		fmt.Println("Expense updated")
	case "del":
		if len(args) < 2 {
			fmt.Println("Usage: expense del <id>")
			return
		}
		if err := client.DeleteExpense(ctx, args[1]); err != nil {
			printErr(err)
			return
		}
		fmt.Println("Expense deleted")
	default:
		fmt.Println("Usage: expense add|edit|del ...")
	}
}

func handleProfile(ctx context.Context, client *api.Client, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: profile name <name..> | profile currency <code>")
		return
	}
	var req models.UpdateProfileRequest
	switch args[0] {
	case "name":
		name := strings.Join(args[1:], " ")
		req.Name = &name
	case "currency":
		currency := models.Currency(args[1])
		req.Currency = &currency
	default:
		fmt.Println("Usage: profile name <name..> | profile currency <code>")
		return
	}
	user, err := client.UpdateProfile(ctx, req)
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("Profile updated: %s currency=%s\n", user.Name, cmp.Or(string(user.Currency), "unset"))
}

// uploadAvatar uploads the file and points the profile at the stored URL.
func uploadAvatar(ctx context.Context, client *api.Client, path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println("cannot open file:", err)
		return
	}
	defer f.Close()

	res, err := client.UploadAvatar(ctx, filepath.Base(path), f)
	if err != nil {
		printErr(err)
		return
	}
	if _, err := client.UpdateProfile(ctx, models.UpdateProfileRequest{AvatarURL: &res.FileURL}); err != nil {
		printErr(err)
		return
	}
	fmt.Println("Avatar updated:", res.FileURL)
}

func main() {
	var showVer bool
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	options := config.Parse()

	if showVer {
		fmt.Printf("Fintrack Client\nVersion: %s\nBuild Date: %s\n",
			cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A"))
		return
	}

	log, err := logger.New(options.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	store := credstore.New(options.CredentialFile)
	sess := session.New(store, log)
	sess.OnLogout(func() {
		if !manualLogout {
			fmt.Println("\nSession expired, please log in again.")
		}
	})

	// Restore any previous session before the prompt renders.
	sess.Bootstrap()

	gw := gateway.New(options.BaseURL, &http.Client{}, sess, log)
	client := api.New(gw, sess)

	if user := sess.User(); user != nil {
		fmt.Printf("Welcome back, %s\n", user.Name)
	}
	repl(client, sess)
}
