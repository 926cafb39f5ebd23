// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package main

import (
	"github.com/yvrob/serpentwrk/demo/wrkdump"
)

func main() {
	wrkdump.Main()
}
