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
	SystemError      = ErrorCode{Code: 510001, Msg: "System error"}
	QuotaExceeded    = ErrorCode{Code: 510002, Msg: "Case generation limit reached"}
	NoCaseType       = ErrorCode{Code: 510003, Msg: "No case type is available"}
	CaseTypeNotFound = ErrorCode{Code: 510004, Msg: "Case type not found"}
	GenerationFailed = ErrorCode{Code: 510005, Msg: "Failed to generate a case, please try again"}
	StorageFailed    = ErrorCode{Code: 510006, Msg: "Failed to save, please try again later"}
	ResponseTooShort = ErrorCode{Code: 510007, Msg: "Your response must be at least 50 characters"}
	ResponseTooLong  = ErrorCode{Code: 510008, Msg: "Your response must be at most 10000 characters"}
	InvalidElapsed   = ErrorCode{Code: 510009, Msg: "Time spent must not be negative"}
	CaseNotFound     = ErrorCode{Code: 510010, Msg: "Case not found"}
	ResponseNotFound = ErrorCode{Code: 510011, Msg: "Response not found"}
	AssessmentFailed = ErrorCode{Code: 510012, Msg: "Failed to assess your response, please try again"}
	InvalidCaseType  = ErrorCode{Code: 510013, Msg: "Invalid case type"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
