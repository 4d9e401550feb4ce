// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/cloudops/cmd/cloudops/cmd"
)

func main() {
	cmd.Execute()
}
