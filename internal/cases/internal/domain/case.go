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

package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 12
)

type CaseTypeStatus uint8

func (s CaseTypeStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	CaseTypeStatusUnknown CaseTypeStatus = iota
	CaseTypeStatusActive
	CaseTypeStatusInactive
)

// CaseType 案例的分类，生成案例的时候作为输入
type CaseType struct {
	Id              int64
	Name            string
	DifficultyLevel int
	Description     string
	Status          CaseTypeStatus
	Utime           time.Time
}

var ErrInvalidCaseType = errors.New("案例类型不合法")

func (c CaseType) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w 名字不能为空", ErrInvalidCaseType)
	}
	if c.DifficultyLevel < MinDifficulty || c.DifficultyLevel > MaxDifficulty {
		return fmt.Errorf("%w 难度 %d 不在 [%d, %d] 之间", ErrInvalidCaseType,
			c.DifficultyLevel, MinDifficulty, MaxDifficulty)
	}
	return nil
}

func (c CaseType) Active() bool {
	return c.Status == CaseTypeStatusActive
}

// DefaultCaseTypes 启动的时候写入，同名的不会覆盖
func DefaultCaseTypes() []CaseType {
	return []CaseType{
		{Name: "Market Sizing", DifficultyLevel: 2, Description: "Estimate the size of a market from first principles."},
		{Name: "Profitability", DifficultyLevel: 4, Description: "Diagnose why a client's profits are declining."},
		{Name: "Pricing", DifficultyLevel: 5, Description: "Set or change the price of a product or service."},
		{Name: "Market Entry", DifficultyLevel: 6, Description: "Decide whether and how a client should enter a new market."},
		{Name: "Growth Strategy", DifficultyLevel: 7, Description: "Find ways for the client to grow revenue."},
		{Name: "Operations", DifficultyLevel: 8, Description: "Improve cost, capacity or process performance."},
		{Name: "Mergers & Acquisitions", DifficultyLevel: 10, Description: "Evaluate a potential acquisition or merger."},
		{Name: "Turnaround", DifficultyLevel: 12, Description: "Rescue a distressed business under time pressure."},
	}
}

// Case 生成以后不再修改
type Case struct {
	Id int64
	// 生成这个案例的用户
	Uid         int64
	Title       string
	Description string
	CaseType    CaseType
	// 生成请求的 id，和额度预占记录一一对应
	Tid   string
	Ctime time.Time
}
