package client

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"go-user-directory/internal/domain"
)

// Form 表单预填内容；缺省字段显示为空串
type Form struct {
	Name  string
	Email string
	Phone string
	Age   string
}

func FormFor(u domain.User) Form {
	f := Form{Name: u.Name, Email: u.Email}
	if u.Phone != nil {
		f.Phone = *u.Phone
	}
	if u.Age != nil {
		f.Age = strconv.Itoa(*u.Age)
	}
	return f
}

// FormTitle / SubmitLabel 表单随编辑态切换文案；
// 编辑态才显示取消按钮
func FormTitle(st State) string {
	if st.Editing() {
		return "Edit User"
	}
	return "Add New User"
}

func SubmitLabel(st State) string {
	if st.Editing() {
		return "Update"
	}
	return "Save"
}

// Table 把记录集渲染成文本表格加一行计数。
// 空集渲染一行 "no users found" 和零计数
func Table(users []domain.User) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tAGE")
	if len(users) == 0 {
		fmt.Fprintln(w, "no users found\t\t\t\t")
		w.Flush()
		sb.WriteString("0 users found\n")
		return sb.String()
	}

	for _, u := range users {
		phone, age := "-", "-"
		if u.Phone != nil {
			phone = *u.Phone
		}
		if u.Age != nil {
			age = strconv.Itoa(*u.Age)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, phone, age)
	}
	w.Flush()
	fmt.Fprintf(&sb, "%d user(s) found\n", len(users))
	return sb.String()
}
