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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

var (
	ErrInvalidSignature = errors.New("Stripe 签名校验失败")
	ErrInvalidEvent     = errors.New("Stripe 事件内容非法")
	ErrNotPurchasable   = errors.New("套餐不能购买")
)

type StripeConfig struct {
	SecretKey     string `yaml:"secretKey"`
	WebhookSecret string `yaml:"webhookSecret"`
	SuccessURL    string `yaml:"successURL"`
	CancelURL     string `yaml:"cancelURL"`
}

//go:generate mockgen -source=./billing.go -destination=../../mocks/billing.mock.go -package=tariffmocks BillingService
type BillingService interface {
	// CreateCheckout 返回 Stripe Checkout 页面的地址
	CreateCheckout(ctx context.Context, uid int64, tariffName string) (string, error)
	// ParseWebhook 校验签名，把订阅事件转换成用户套餐。
	// 不关心的事件 ok 为 false
	ParseWebhook(payload []byte, signature string) (ut domain.UserTariff, ok bool, err error)
}

type stripeBillingService struct {
	svc    Service
	api    *client.API
	config StripeConfig
}

func NewStripeBillingService(svc Service, cfg StripeConfig) BillingService {
	return &stripeBillingService{
		svc:    svc,
		api:    client.New(cfg.SecretKey, nil),
		config: cfg,
	}
}

func (b *stripeBillingService) CreateCheckout(ctx context.Context, uid int64, tariffName string) (string, error) {
	t, err := b.svc.FindTariff(ctx, tariffName)
	if err != nil {
		return "", err
	}
	if t.PriceLookupKey == "" {
		return "", fmt.Errorf("%w: %s", ErrNotPurchasable, tariffName)
	}
	priceID, err := b.findPrice(ctx, t.PriceLookupKey)
	if err != nil {
		return "", err
	}
	metadata := map[string]string{
		"uid":    strconv.FormatInt(uid, 10),
		"tariff": t.Name,
	}
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		ClientReferenceID: stripe.String(strconv.FormatInt(uid, 10)),
		SuccessURL:        stripe.String(b.config.SuccessURL),
		CancelURL:         stripe.String(b.config.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		},
	}
	params.Context = ctx
	sess, err := b.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("创建 Stripe Checkout 失败: %w", err)
	}
	return sess.URL, nil
}

func (b *stripeBillingService) findPrice(ctx context.Context, lookupKey string) (string, error) {
	params := &stripe.PriceListParams{
		LookupKeys: stripe.StringSlice([]string{lookupKey}),
	}
	params.Context = ctx
	it := b.api.Prices.List(params)
	for it.Next() {
		return it.Price().ID, nil
	}
	if err := it.Err(); err != nil {
		return "", fmt.Errorf("查询 Stripe 价格失败: %w", err)
	}
	return "", fmt.Errorf("%w: 找不到价格 %s", ErrNotPurchasable, lookupKey)
}

func (b *stripeBillingService) ParseWebhook(payload []byte, signature string) (domain.UserTariff, bool, error) {
	evt, err := webhook.ConstructEventWithOptions(payload, signature, b.config.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return domain.UserTariff{}, false, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return subscriptionChange(evt)
}

func subscriptionChange(evt stripe.Event) (domain.UserTariff, bool, error) {
	typ := string(evt.Type)
	switch typ {
	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
	default:
		return domain.UserTariff{}, false, nil
	}
	if evt.Data == nil {
		return domain.UserTariff{}, false, fmt.Errorf("%w: 缺少 data", ErrInvalidEvent)
	}
	var sub stripe.Subscription
	if err := json.Unmarshal(evt.Data.Raw, &sub); err != nil {
		return domain.UserTariff{}, false, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	uid, err := strconv.ParseInt(sub.Metadata["uid"], 10, 64)
	if err != nil || uid <= 0 {
		return domain.UserTariff{}, false, fmt.Errorf("%w: metadata 里面 uid 非法 %q", ErrInvalidEvent, sub.Metadata["uid"])
	}
	ut := domain.UserTariff{
		Uid:            uid,
		SubscriptionId: sub.ID,
		Tariff:         domain.Tariff{Name: sub.Metadata["tariff"]},
		Status:         domain.SubscriptionActive,
	}
	if typ == "customer.subscription.deleted" || !subscriptionUsable(sub.Status) {
		ut.Tariff.Name = domain.TariffFree
		ut.Status = domain.SubscriptionCanceled
		return ut, true, nil
	}
	if ut.Tariff.Name == "" {
		return domain.UserTariff{}, false, fmt.Errorf("%w: metadata 里面缺少 tariff", ErrInvalidEvent)
	}
	return ut, true, nil
}

func subscriptionUsable(status stripe.SubscriptionStatus) bool {
	switch status {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing, stripe.SubscriptionStatusPastDue:
		return true
	default:
		return false
	}
}
