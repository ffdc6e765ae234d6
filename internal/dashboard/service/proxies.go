package service

import (
	"context"
	"sync"
	"time"

	"github.com/farmops/farmboard/internal/dashboard/domain"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/pkg/idx"
)

// ProxiesService is the repository for proxies. It mirrors CardsService: the
// same assignment-triple invariant applies.
type ProxiesService struct {
	Store       store.Store
	Projections *Projections

	mu sync.Mutex
}

type ProxyPatch struct {
	Host     *string
	Port     *int
	Protocol *string
	Country  *string
	Username *string
	Password *string
	Status   *domain.ResourceStatus
	Cost     *float64
}

func (s *ProxiesService) Create(ctx context.Context, actor domain.User, proxy domain.Proxy) (domain.Proxy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if proxy.Status == "" {
		proxy.Status = domain.ResourceActive
	}

	now := time.Now().UTC()
	proxy.ID = idx.New().String()
	proxy.Assignment = domain.Assignment{}
	proxy.CreatedAt = now
	proxy.UpdatedAt = now

	proxies := []domain.Proxy{}
	s.Store.Get(ctx, store.KeyProxies, &proxies)
	proxies = append(proxies, proxy)

	if err := s.Store.Set(ctx, store.KeyProxies, proxies); err != nil {
		return domain.Proxy{}, err
	}
	s.Projections.SetProxies(proxies)
	return proxy, nil
}

func (s *ProxiesService) Update(ctx context.Context, actor domain.User, id string, patch ProxyPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proxies := []domain.Proxy{}
	s.Store.Get(ctx, store.KeyProxies, &proxies)

	changed := false
	for i := range proxies {
		if proxies[i].ID != id {
			continue
		}
		if patch.Host != nil {
			proxies[i].Host = *patch.Host
		}
		if patch.Port != nil {
			proxies[i].Port = *patch.Port
		}
		if patch.Protocol != nil {
			proxies[i].Protocol = *patch.Protocol
		}
		if patch.Country != nil {
			proxies[i].Country = *patch.Country
		}
		if patch.Username != nil {
			proxies[i].Username = *patch.Username
		}
		if patch.Password != nil {
			proxies[i].Password = *patch.Password
		}
		if patch.Status != nil {
			proxies[i].Status = *patch.Status
		}
		if patch.Cost != nil {
			proxies[i].Cost = *patch.Cost
		}
		proxies[i].UpdatedAt = time.Now().UTC()
		changed = true
		break
	}
	if !changed {
		return nil
	}

	if err := s.Store.Set(ctx, store.KeyProxies, proxies); err != nil {
		return err
	}
	s.Projections.SetProxies(proxies)
	return nil
}

func (s *ProxiesService) Delete(ctx context.Context, actor domain.User, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proxies := []domain.Proxy{}
	s.Store.Get(ctx, store.KeyProxies, &proxies)

	kept := proxies[:0]
	for _, p := range proxies {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := s.Store.Set(ctx, store.KeyProxies, kept); err != nil {
		return err
	}
	s.Projections.SetProxies(kept)
	return nil
}

func (s *ProxiesService) Assign(ctx context.Context, actor domain.User, proxyID, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proxies := []domain.Proxy{}
	s.Store.Get(ctx, store.KeyProxies, &proxies)

	now := time.Now().UTC()
	found := false
	for i := range proxies {
		if proxies[i].ID != proxyID {
			continue
		}
		proxies[i].Assignment = domain.Assignment{
			AssignedTo: accountID,
			AssignedBy: actor.ID,
			AssignedAt: &now,
		}
		proxies[i].Status = domain.ResourceAssigned
		proxies[i].UpdatedAt = now
		found = true
		break
	}
	if !found {
		return ErrNotFound
	}

	if err := s.Store.Set(ctx, store.KeyProxies, proxies); err != nil {
		return err
	}
	s.Projections.SetProxies(proxies)
	return nil
}

func (s *ProxiesService) Unassign(ctx context.Context, actor domain.User, proxyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proxies := []domain.Proxy{}
	s.Store.Get(ctx, store.KeyProxies, &proxies)

	found := false
	for i := range proxies {
		if proxies[i].ID != proxyID {
			continue
		}
		proxies[i].Assignment = domain.Assignment{}
		proxies[i].Status = domain.ResourceActive
		proxies[i].UpdatedAt = time.Now().UTC()
		found = true
		break
	}
	if !found {
		return ErrNotFound
	}

	if err := s.Store.Set(ctx, store.KeyProxies, proxies); err != nil {
		return err
	}
	s.Projections.SetProxies(proxies)
	return nil
}
