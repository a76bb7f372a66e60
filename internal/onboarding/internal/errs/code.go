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

package errs

var (
	SystemError      = ErrorCode{Code: 517001, Msg: "System error"}
	AlreadyAnswered  = ErrorCode{Code: 517002, Msg: "You have already answered this step"}
	InvalidOption    = ErrorCode{Code: 517003, Msg: "Invalid option"}
	NoSelection      = ErrorCode{Code: 517004, Msg: "Please select an option before continuing"}
	SkipNotConfirmed = ErrorCode{Code: 517005, Msg: "Please confirm that you want to skip the introduction"}
	Completed        = ErrorCode{Code: 517006, Msg: "You have already completed the introduction"}
	NotCompleted     = ErrorCode{Code: 517007, Msg: "Finish or skip the introduction before restarting"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
