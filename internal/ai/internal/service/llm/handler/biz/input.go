// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package biz

import (
	"fmt"
	"unicode/utf8"
)

func checkArity(input []string, want int) error {
	if len(input) != want {
		return fmt.Errorf("%w 期望 %d 个，实际 %d 个", ErrInvalidInput, want, len(input))
	}
	return nil
}

// checkLength 按字符计算长度，maxInput <= 0 表示不限制
func checkLength(s string, maxInput int) error {
	if maxInput <= 0 {
		return nil
	}
	l := utf8.RuneCountInString(s)
	if l > maxInput {
		return fmt.Errorf("%w 最长不超过 %d，现有长度 %d", ErrInputTooLong, maxInput, l)
	}
	return nil
}
