// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command reader is the terminal front end of the Yomira mock data API.
package main

import "github.com/taibuivan/yomira-reader/internal/cli"

func main() {
	cli.Execute()
}
