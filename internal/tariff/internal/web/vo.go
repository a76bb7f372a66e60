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

package web

import (
	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
)

const dateLayout = "2006-01-02"

// Usage 额度查询的返回值，不限的额度是 -1
type Usage struct {
	CanGenerate        bool   `json:"canGenerate"`
	CasesUsedThisWeek  int64  `json:"casesUsedThisWeek"`
	WeeklyLimit        int64  `json:"weeklyLimit"`
	CasesUsedThisMonth int64  `json:"casesUsedThisMonth"`
	MonthlyLimit       int64  `json:"monthlyLimit"`
	TariffName         string `json:"tariffName"`
	ResetDate          string `json:"resetDate"`
	Reason             string `json:"reason,omitempty"`
}

func NewUsage(d domain.Decision) Usage {
	u := d.Usage()
	res := Usage{
		CanGenerate:        d.Allowed(),
		CasesUsedThisWeek:  u.WeeklyUsed,
		WeeklyLimit:        u.WeeklyLimit.ToInt64(),
		CasesUsedThisMonth: u.MonthlyUsed,
		MonthlyLimit:       u.MonthlyLimit.ToInt64(),
		TariffName:         u.TariffName,
		ResetDate:          u.ResetDate.Format(dateLayout),
	}
	if denied, ok := d.(domain.QuotaDenied); ok {
		res.Reason = string(denied.Reason)
	}
	return res
}

type Tariff struct {
	Name         string `json:"name"`
	WeeklyLimit  int64  `json:"weeklyLimit"`
	MonthlyLimit int64  `json:"monthlyLimit"`
	Purchasable  bool   `json:"purchasable"`
}

func newTariff(t domain.Tariff) Tariff {
	return Tariff{
		Name:         t.Name,
		WeeklyLimit:  t.WeeklyLimit.ToInt64(),
		MonthlyLimit: t.MonthlyLimit.ToInt64(),
		Purchasable:  t.PriceLookupKey != "",
	}
}

type CheckoutReq struct {
	Tariff string `json:"tariff"`
}

type CheckoutResp struct {
	URL string `json:"url"`
}
