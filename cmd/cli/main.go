package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-user-directory/internal/client"
	"go-user-directory/internal/core/config"
	"go-user-directory/internal/core/logger"
	"go-user-directory/internal/domain"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	base := cfg.Client.BaseURL
	if len(os.Args) > 1 {
		base = os.Args[1]
	}

	ctx := context.Background()
	sess := client.NewSession(client.New(base))

	// 初次加载失败会退回演示数据，界面照常可用
	if err := sess.Start(ctx); err != nil {
		log.Warn("initial load failed, showing demo data", zap.Error(err))
	}
	fmt.Print(client.Table(sess.Visible()))

	in := bufio.NewScanner(os.Stdin)
	repl(ctx, sess, in, log)
}

const usage = `commands:
  list                 show all users
  search <term>        filter by name/email/phone
  clear                clear the search
  add                  create a user
  edit <id>            update a user
  del <id>             delete a user (asks for confirmation)
  quit`

func repl(ctx context.Context, sess *client.Session, in *bufio.Scanner, log *zap.Logger) {
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(in.Text()), " ")

		switch cmd {
		case "":
		case "list":
			fmt.Print(client.Table(sess.ClearSearch()))
		case "search":
			fmt.Print(client.Table(sess.Search(arg)))
		case "clear":
			fmt.Print(client.Table(sess.ClearSearch()))
		case "add":
			submitForm(ctx, sess, in, client.Form{}, log)
		case "edit":
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: edit <id>")
				continue
			}
			form, ok := sess.BeginEdit(id)
			if !ok {
				fmt.Println("user not found")
				continue
			}
			submitForm(ctx, sess, in, form, log)
		case "del":
			id, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("usage: del <id>")
				continue
			}
			confirmDelete(ctx, sess, in, id, log)
		case "quit", "exit":
			return
		default:
			fmt.Println(usage)
		}
	}
}

// submitForm 逐项读取字段（编辑时回车保留预填值），提交后重绘
func submitForm(ctx context.Context, sess *client.Session, in *bufio.Scanner, form client.Form, log *zap.Logger) {
	fmt.Printf("-- %s --\n", client.FormTitle(sess.State()))
	input := domain.UserInput{
		Name:  prompt(in, "name", form.Name),
		Email: prompt(in, "email", form.Email),
		Phone: prompt(in, "phone", form.Phone),
	}
	input.Age = domain.AgeFromString(prompt(in, "age", form.Age))

	u, err := sess.Submit(ctx, input)
	if err != nil {
		// 提交失败不动本地状态，只提示
		log.Error("save user failed", zap.Error(err))
		fmt.Println("error:", errMessage(err))
		sess.CancelEdit()
		return
	}
	fmt.Printf("saved user %d\n", u.ID)
	fmt.Print(client.Table(sess.Visible()))
}

// confirmDelete 两段式删除：先记待删 ID，y 才真正调用
func confirmDelete(ctx context.Context, sess *client.Session, in *bufio.Scanner, id int, log *zap.Logger) {
	sess.RequestDelete(id)
	if strings.ToLower(prompt(in, fmt.Sprintf("delete user %d? [y/N]", id), "")) != "y" {
		sess.CancelDelete()
		return
	}
	if err := sess.ConfirmDelete(ctx); err != nil {
		log.Error("delete user failed", zap.Error(err))
		fmt.Println("error:", errMessage(err))
		sess.CancelDelete()
		return
	}
	fmt.Print(client.Table(sess.Visible()))
}

func prompt(in *bufio.Scanner, label, preset string) string {
	if preset != "" {
		fmt.Printf("%s [%s]: ", label, preset)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !in.Scan() {
		return preset
	}
	if s := strings.TrimSpace(in.Text()); s != "" {
		return s
	}
	return preset
}

func errMessage(err error) string {
	if ae, ok := err.(*client.APIError); ok {
		return ae.Message
	}
	return err.Error()
}
