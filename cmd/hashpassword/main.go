package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	authService "github.com/m04kA/SMC-BarbershopService/internal/service/auth"
)

// Печатает bcrypt-хэш пароля для вставки в admin_users.password_hash.
// Пароль читается из первого аргумента или из stdin.
func main() {
	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintf(os.Stderr, "Failed to read password: %v\n", err)
			os.Exit(1)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
