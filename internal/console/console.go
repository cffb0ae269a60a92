// Package console provides an interactive line based front end to the ledger.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// AccountService provides account operations needed by the console.
type AccountService interface {
	Create(ctx context.Context, number, holder, kind string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Summary, error)
	History(ctx context.Context, number string) ([]string, error)
	Deposit(ctx context.Context, number, amount string) (domain.Account, error)
	Withdraw(ctx context.Context, number, amount string) (domain.Account, error)
	ApplyInterest(ctx context.Context, number string) (domain.Account, error)
}

// TransferService provides transfer operation needed by the console.
type TransferService interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferResult, error)
}

const prompt = "> "

const usage = `Commands:
  create <number> <holder> <savings|current>
  deposit <number> <amount>
  withdraw <number> <amount>
  transfer <from> <to> <amount>
  interest <number>
  list
  history <number>
  help
  exit
`

// Console reads commands from in and writes results to out.
type Console struct {
	accounts  AccountService
	transfers TransferService
	in        io.Reader
	out       io.Writer
}

// New returns a console bound to the given services.
func New(as AccountService, ts TransferService, in io.Reader, out io.Writer) *Console {
	return &Console{
		accounts:  as,
		transfers: ts,
		in:        in,
		out:       out,
	}
}

type command struct {
	args    int
	handler func(c *Console, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"create":   {args: 3, handler: (*Console).create},
	"deposit":  {args: 2, handler: (*Console).deposit},
	"withdraw": {args: 2, handler: (*Console).withdraw},
	"transfer": {args: 3, handler: (*Console).transfer},
	"interest": {args: 1, handler: (*Console).interest},
	"list":     {args: 0, handler: (*Console).list},
	"history":  {args: 1, handler: (*Console).history},
}

// Run processes commands until exit is entered, input ends or ctx is done.
//
// Input is read in its own goroutine so a cancelled ctx stops Run even while
// waiting for the next line.
func (c *Console) Run(ctx context.Context) error {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := c.readLines(readCtx)

	c.printf("%s", prompt)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return c.readFailure(ctx, <-readErr)
			}

			if c.exec(ctx, line) {
				return nil
			}

			c.printf("%s", prompt)
		}
	}
}

func (c *Console) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}

		errc <- scanner.Err()
	}()

	return lines, errc
}

func (c *Console) readFailure(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		return pkgerrors.Wrap(err, "read console input")
	}

	return nil
}

// exec runs a single input line and reports whether the console should stop.
func (c *Console) exec(ctx context.Context, line string) bool {
	words, err := shellquote.Split(line)
	if err != nil {
		c.printf("Invalid input: %v\n", err)
		return false
	}

	if len(words) == 0 {
		return false
	}

	name, args := strings.ToLower(words[0]), words[1:]

	switch name {
	case "exit", "quit":
		return true
	case "help":
		c.printf("%s", usage)
		return false
	}

	cmd, ok := commands[name]

	switch {
	case !ok:
		c.printf("Unknown command %q, type help for the list of commands\n", name)
	case len(args) != cmd.args:
		c.printf("%s expects %d arguments\n", name, cmd.args)
	default:
		if err := cmd.handler(c, ctx, args); err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Str("command", name).Send()
			c.printf("%s\n", message(err))
		}
	}

	return false
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// message renders ledger errors the way users expect to read them.
func message(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "Account Not Found!"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient Balance!"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Invalid Amount!"
	case errors.Is(err, domain.ErrBalanceOverflow):
		return "Balance Limit Exceeded!"
	case errors.Is(err, domain.ErrAccountAlreadyExists):
		return "Account Already Exists!"
	case errors.Is(err, domain.ErrInvalidAccountKind):
		return "Invalid Account Type! Use savings or current."
	case errors.Is(err, domain.ErrInvalidAccount):
		return "Account Number and Holder Name are required!"
	case errors.Is(err, domain.ErrInterestNotSupported):
		return "Interest is only available for Savings accounts!"
	}

	return "Error: " + err.Error()
}

func (c *Console) create(ctx context.Context, args []string) error {
	if _, err := c.accounts.Create(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}

	c.printf("Account Created Successfully!\n")

	return nil
}

func (c *Console) deposit(ctx context.Context, args []string) error {
	a, err := c.accounts.Deposit(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	c.printf("Deposit Successful! New Balance: %s\n", domain.FormatAmount(a.Balance))

	return nil
}

func (c *Console) withdraw(ctx context.Context, args []string) error {
	a, err := c.accounts.Withdraw(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	c.printf("Withdrawal Successful! New Balance: %s\n", domain.FormatAmount(a.Balance))

	return nil
}

func (c *Console) transfer(ctx context.Context, args []string) error {
	arg := domain.CreateTransferParams{
		FromAccount: args[0],
		ToAccount:   args[1],
		Amount:      args[2],
	}

	if _, err := c.transfers.Transfer(ctx, arg); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			c.printf("Invalid Account Number!\n")
			return nil
		}

		return err
	}

	c.printf("Transfer Successful!\n")

	return nil
}

func (c *Console) interest(ctx context.Context, args []string) error {
	a, err := c.accounts.ApplyInterest(ctx, args[0])
	if err != nil {
		return err
	}

	c.printf("Interest Applied! New Balance: %s\n", domain.FormatAmount(a.Balance))

	return nil
}

func (c *Console) list(ctx context.Context, _ []string) error {
	accounts, err := c.accounts.List(ctx)
	if err != nil {
		return err
	}

	var sb strings.Builder

	sb.WriteString("Accounts:\n")

	for _, a := range accounts {
		fmt.Fprintf(&sb, "Account Number: %s, Holder: %s, Type: %s, Balance: %s\n",
			a.Number, a.Holder, a.Type, domain.FormatAmount(a.Balance))
	}

	c.printf("%s", sb.String())

	return nil
}

func (c *Console) history(ctx context.Context, args []string) error {
	history, err := c.accounts.History(ctx, args[0])
	if err != nil {
		return err
	}

	c.printf("Transaction History:\n")

	for _, entry := range history {
		c.printf("%s\n", entry)
	}

	return nil
}
